package registry

import (
	"fmt"
	"strings"
)

// isrcValidator checks International Standard Recording Codes.
type isrcValidator struct{}

// ISRC returns the validator for International Standard Recording Codes,
// format CC-XXX-YY-NNNNN. Matching is case-insensitive and hyphens are
// normalized away before checking.
func ISRC() Validator {
	return isrcValidator{}
}

func (isrcValidator) Tag() string { return TagISRC }

func (isrcValidator) Validate(value string) error {
	normalized := strings.ToUpper(strings.ReplaceAll(value, "-", ""))
	if len(normalized) != 12 {
		return fmt.Errorf("length %d after removing hyphens, want 12", len(normalized))
	}
	// CC: two-letter country code.
	for i := 0; i < 2; i++ {
		if !isUpperLetter(normalized[i]) {
			return fmt.Errorf("country code must be two letters")
		}
	}
	// XXX: three-character alphanumeric registrant code.
	for i := 2; i < 5; i++ {
		if !isUpperLetter(normalized[i]) && !isDigit(normalized[i]) {
			return fmt.Errorf("registrant code must be three alphanumerics")
		}
	}
	// YY: two-digit reference year.
	for i := 5; i < 7; i++ {
		if !isDigit(normalized[i]) {
			return fmt.Errorf("year must be two digits")
		}
	}
	// NNNNN: five-digit designation code.
	for i := 7; i < 12; i++ {
		if !isDigit(normalized[i]) {
			return fmt.Errorf("designation code must be five digits")
		}
	}
	return nil
}

func isUpperLetter(c byte) bool { return c >= 'A' && c <= 'Z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
