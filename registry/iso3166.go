package registry

import "fmt"

// iso3166Validator checks ISO 3166-1 alpha-2 jurisdiction codes against a
// static table of officially assigned codes.
type iso3166Validator struct{}

// ISO3166 returns the validator for ISO 3166-1 alpha-2 country codes.
// Codes are case-sensitive: only the uppercase form is canonical.
func ISO3166() Validator {
	return iso3166Validator{}
}

func (iso3166Validator) Tag() string { return TagISO3166 }

func (iso3166Validator) Validate(value string) error {
	if len(value) != 2 {
		return fmt.Errorf("length %d, want 2", len(value))
	}
	if !alpha2Codes[value] {
		return fmt.Errorf("%s is not an assigned ISO 3166-1 alpha-2 code", value)
	}
	return nil
}

// alpha2Codes is the officially assigned ISO 3166-1 alpha-2 set.
var alpha2Codes = func() map[string]bool {
	codes := []string{
		"AD", "AE", "AF", "AG", "AI", "AL", "AM", "AO", "AQ", "AR",
		"AS", "AT", "AU", "AW", "AX", "AZ", "BA", "BB", "BD", "BE",
		"BF", "BG", "BH", "BI", "BJ", "BL", "BM", "BN", "BO", "BQ",
		"BR", "BS", "BT", "BV", "BW", "BY", "BZ", "CA", "CC", "CD",
		"CF", "CG", "CH", "CI", "CK", "CL", "CM", "CN", "CO", "CR",
		"CU", "CV", "CW", "CX", "CY", "CZ", "DE", "DJ", "DK", "DM",
		"DO", "DZ", "EC", "EE", "EG", "EH", "ER", "ES", "ET", "FI",
		"FJ", "FK", "FM", "FO", "FR", "GA", "GB", "GD", "GE", "GF",
		"GG", "GH", "GI", "GL", "GM", "GN", "GP", "GQ", "GR", "GS",
		"GT", "GU", "GW", "GY", "HK", "HM", "HN", "HR", "HT", "HU",
		"ID", "IE", "IL", "IM", "IN", "IO", "IQ", "IR", "IS", "IT",
		"JE", "JM", "JO", "JP", "KE", "KG", "KH", "KI", "KM", "KN",
		"KP", "KR", "KW", "KY", "KZ", "LA", "LB", "LC", "LI", "LK",
		"LR", "LS", "LT", "LU", "LV", "LY", "MA", "MC", "MD", "ME",
		"MF", "MG", "MH", "MK", "ML", "MM", "MN", "MO", "MP", "MQ",
		"MR", "MS", "MT", "MU", "MV", "MW", "MX", "MY", "MZ", "NA",
		"NC", "NE", "NF", "NG", "NI", "NL", "NO", "NP", "NR", "NU",
		"NZ", "OM", "PA", "PE", "PF", "PG", "PH", "PK", "PL", "PM",
		"PN", "PR", "PS", "PT", "PW", "PY", "QA", "RE", "RO", "RS",
		"RU", "RW", "SA", "SB", "SC", "SD", "SE", "SG", "SH", "SI",
		"SJ", "SK", "SL", "SM", "SN", "SO", "SR", "SS", "ST", "SV",
		"SX", "SY", "SZ", "TC", "TD", "TF", "TG", "TH", "TJ", "TK",
		"TL", "TM", "TN", "TO", "TR", "TT", "TV", "TW", "TZ", "UA",
		"UG", "UM", "US", "UY", "UZ", "VA", "VC", "VE", "VG", "VI",
		"VN", "VU", "WF", "WS", "YE", "YT", "ZA", "ZM", "ZW",
	}
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}()
