package registry

import (
	"fmt"
	"strings"
)

// artIDValidator checks ART-ID artwork identifiers,
// format ART-<region>-<year>-<sequence>-<check>.
type artIDValidator struct{}

// ArtID returns the validator for ART-ID artwork identifiers. The trailing
// check digit is a mod-11 weighted sum over the year and sequence digits.
func ArtID() Validator {
	return artIDValidator{}
}

func (artIDValidator) Tag() string { return TagArtID }

func (artIDValidator) Validate(value string) error {
	parts := strings.Split(value, "-")
	if len(parts) != 5 {
		return fmt.Errorf("want 5 hyphen-separated fields ART-RR-YYYY-SSSSSS-C, have %d", len(parts))
	}
	if parts[0] != "ART" {
		return fmt.Errorf("must begin with ART")
	}
	region, year, seq, check := parts[1], parts[2], parts[3], parts[4]
	if len(region) != 2 || !isUpperLetter(region[0]) || !isUpperLetter(region[1]) {
		return fmt.Errorf("region must be two uppercase letters")
	}
	if !allDigits(year) || len(year) != 4 {
		return fmt.Errorf("year must be four digits")
	}
	if !allDigits(seq) || len(seq) != 6 {
		return fmt.Errorf("sequence must be six digits")
	}
	if len(check) != 1 || !isDigit(check[0]) {
		return fmt.Errorf("check must be a single digit")
	}

	digits := year + seq
	sum := 0
	for i := 0; i < len(digits); i++ {
		// Weight rises with position so the leading digit carries the
		// smallest weight and the final digit len(digits)+1.
		sum += (i + 2) * int(digits[i]-'0')
	}
	want := sum % 11
	if want == 10 {
		return fmt.Errorf("no valid check digit exists for this sequence")
	}
	if int(check[0]-'0') != want {
		return fmt.Errorf("check digit mismatch: have %c, want %d", check[0], want)
	}
	return nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
