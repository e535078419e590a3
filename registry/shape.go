package registry

import (
	"fmt"
	"regexp"
)

// shapeValidator is a syntax-only validator: the registry publishes no
// checksum at this revision, so a value is accepted whenever it matches the
// documented pattern.
type shapeValidator struct {
	tag     string
	pattern *regexp.Regexp
	want    string
}

func (v shapeValidator) Tag() string { return v.tag }

func (v shapeValidator) Validate(value string) error {
	if !v.pattern.MatchString(value) {
		return fmt.Errorf("does not match %s form %s", v.tag, v.want)
	}
	return nil
}

// EIDR returns the syntax validator for Entertainment Identifier Registry
// DOIs, form 10.5240/XXXX-XXXX-XXXX-XXXX-XXXX-C.
func EIDR() Validator {
	return shapeValidator{
		tag:     TagEIDR,
		pattern: regexp.MustCompile(`^10\.5240/(?:[0-9A-F]{4}-){5}[0-9A-Z]$`),
		want:    "10.5240/XXXX-XXXX-XXXX-XXXX-XXXX-C",
	}
}

// ISSN returns the syntax validator for International Standard Serial
// Numbers, form NNNN-NNNC where the final character may be X.
func ISSN() Validator {
	return shapeValidator{
		tag:     TagISSN,
		pattern: regexp.MustCompile(`^[0-9]{4}-[0-9]{3}[0-9X]$`),
		want:    "NNNN-NNNC",
	}
}

// DOI returns the syntax validator for Digital Object Identifiers,
// form 10.<prefix>/<suffix>.
func DOI() Validator {
	return shapeValidator{
		tag:     TagDOI,
		pattern: regexp.MustCompile(`^10\.[0-9]{4,9}/[^\s)]+$`),
		want:    "10.NNNN/suffix",
	}
}

// APN returns the syntax validator for assessor parcel numbers,
// form BBB-PPP-SSS (two to four digits per field).
func APN() Validator {
	return shapeValidator{
		tag:     TagAPN,
		pattern: regexp.MustCompile(`^[0-9]{2,4}-[0-9]{2,4}-[0-9]{2,4}$`),
		want:    "BBB-PPP-SSS",
	}
}

// DRE returns the syntax validator for DRE license numbers, eight digits.
func DRE() Validator {
	return shapeValidator{
		tag:     TagDRE,
		pattern: regexp.MustCompile(`^[0-9]{8}$`),
		want:    "NNNNNNNN",
	}
}

// FCC returns the syntax validator for FCC broadcast call signs, a K or W
// prefix with two or three letters and an optional service suffix.
func FCC() Validator {
	return shapeValidator{
		tag:     TagFCC,
		pattern: regexp.MustCompile(`^[KW][A-Z]{2,3}(?:-(?:AM|FM|TV|LP|CA|DT))?$`),
		want:    "KXXX or WXXX with optional -AM/-FM/-TV suffix",
	}
}
