package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestISO3166(t *testing.T) {
	v := ISO3166()

	for _, code := range []string{"US", "DE", "JP", "BR", "AX", "ZW"} {
		assert.NoError(t, v.Validate(code), code)
	}

	invalid := map[string]string{
		"unassigned":  "XX",
		"lowercase":   "us",
		"alpha-3":     "USA",
		"one letter":  "U",
		"empty":       "",
		"digits":      "U1",
		"former code": "ZR", // Zaire, withdrawn
	}
	for name, code := range invalid {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, v.Validate(code))
		})
	}
}
