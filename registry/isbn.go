package registry

import (
	"fmt"
	"strings"
)

// isbnValidator checks ISBN-10 and ISBN-13 identifiers, including their
// check digits.
type isbnValidator struct{}

// ISBN returns the validator for International Standard Book Numbers.
// Both the 10- and 13-digit forms are accepted; hyphens are not.
func ISBN() Validator {
	return isbnValidator{}
}

func (isbnValidator) Tag() string { return TagISBN }

func (isbnValidator) Validate(value string) error {
	switch len(value) {
	case 13:
		return validateISBN13(value)
	case 10:
		return validateISBN10(value)
	default:
		return fmt.Errorf("length %d, want 10 or 13", len(value))
	}
}

// validateISBN13 checks a 13-digit ISBN: 978/979 prefix, digits only, and
// the mod-10 check digit with alternating weights 1 and 3.
func validateISBN13(value string) error {
	if !strings.HasPrefix(value, "978") && !strings.HasPrefix(value, "979") {
		return fmt.Errorf("ISBN-13 must begin with 978 or 979")
	}
	sum := 0
	for i, r := range value {
		if r < '0' || r > '9' {
			return fmt.Errorf("non-digit character %q at offset %d", r, i)
		}
		if i == 12 {
			check := (10 - sum%10) % 10
			if int(r-'0') != check {
				return fmt.Errorf("check digit mismatch: have %c, want %d", r, check)
			}
			return nil
		}
		if i%2 == 0 {
			sum += int(r - '0')
		} else {
			sum += 3 * int(r-'0')
		}
	}
	return nil
}

// validateISBN10 checks a 10-character ISBN: nine digits plus a final digit
// or X, weighted 10 down to 1, total divisible by 11.
func validateISBN10(value string) error {
	sum := 0
	for i, r := range value {
		var digit int
		switch {
		case r >= '0' && r <= '9':
			digit = int(r - '0')
		case r == 'X' && i == 9:
			digit = 10
		default:
			return fmt.Errorf("invalid character %q at offset %d", r, i)
		}
		sum += (10 - i) * digit
	}
	if sum%11 != 0 {
		return fmt.Errorf("check digit mismatch")
	}
	return nil
}
