package gatecode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const allInactive = "0.0.0.0.0.0.0.0.0.0"

func TestScanAllInactive(t *testing.T) {
	tokens, err := Scan(allInactive)
	require.NoError(t, err)
	require.Len(t, tokens, DocumentGates)
	for i, token := range tokens {
		assert.Equal(t, Position(i+1), token.Position)
		assert.False(t, token.Active)
		assert.Empty(t, token.RawMeta)
		assert.Empty(t, token.RawValue)
	}
}

func TestScanActiveSegment(t *testing.T) {
	tokens, err := Scan("1(type=ISBN;9781119473862).0.0.0.0.0.0.0.0.0")
	require.NoError(t, err)
	assert.True(t, tokens[0].Active)
	assert.Equal(t, "type=ISBN", tokens[0].RawMeta)
	assert.Equal(t, "9781119473862", tokens[0].RawValue)
}

func TestScanDotInsidePayload(t *testing.T) {
	// DOI and EIDR payloads contain dots; only dots at parenthesis depth
	// zero separate gates.
	tokens, err := Scan("0.0.0.1(type=DOI;10.1000/182).0.0.0.0.0.0")
	require.NoError(t, err)
	assert.Equal(t, "10.1000/182", tokens[3].RawValue)
}

func TestScanValueMayContainSemicolons(t *testing.T) {
	// Only the first ';' splits metadata from value.
	tokens, err := Scan("1(type=DOI;10.1000/a;b).0.0.0.0.0.0.0.0.0")
	require.NoError(t, err)
	assert.Equal(t, "type=DOI", tokens[0].RawMeta)
	assert.Equal(t, "10.1000/a;b", tokens[0].RawValue)
}

func TestScanGateCount(t *testing.T) {
	cases := map[string]struct {
		input string
		count int
	}{
		"nine segments":   {strings.Repeat("0.", 8) + "0", 9},
		"eleven segments": {strings.Repeat("0.", 10) + "0", 11},
		"trailing dot":    {allInactive + ".", 11},
		"leading dot":     {"." + allInactive, 11},
		"empty input":     {"", 1},
		"single gate":     {"0", 1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Scan(tc.input)
			var countErr *GateCountError
			require.ErrorAs(t, err, &countErr)
			assert.Equal(t, tc.count, countErr.Count)
		})
	}
}

func TestScanUnclosedParenthesis(t *testing.T) {
	// Without a closing paren every remaining dot sits at depth one; the
	// scanner reports the open gate instead of a misleading gate count.
	cases := map[string]struct {
		input    string
		position Position
	}{
		"first gate":  {"1(type=ISBN;9781119473862.0.0.0.0.0.0.0.0.0", 1},
		"middle gate": {"0.0.0.0.1(type=ART-ID;ART-US-2025-000083-7.0.0.0.0.0", 5},
		"last gate":   {"0.0.0.0.0.0.0.0.0.1(type=ISO3166;US", 10},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Scan(tc.input)
			var syntaxErr *GateSyntaxError
			require.ErrorAs(t, err, &syntaxErr, "got %v", err)
			assert.Equal(t, tc.position, syntaxErr.Position)
			assert.Contains(t, syntaxErr.Reason, "unclosed parenthesis")
		})
	}
}

func TestScanSegmentShape(t *testing.T) {
	cases := map[string]string{
		"empty segment":          "0..0.0.0.0.0.0.0.0",
		"inactive with body":     "0(type=ISBN;9781119473862).0.0.0.0.0.0.0.0.0",
		"bare one":               "1.0.0.0.0.0.0.0.0.0",
		"text after close":       "1(type=ISBN;9781119473862)x.0.0.0.0.0.0.0.0.0",
		"missing semicolon":      "1(type=ISBN).0.0.0.0.0.0.0.0.0",
		"empty body":             "1().0.0.0.0.0.0.0.0.0",
		"empty value":            "1(type=ISBN;).0.0.0.0.0.0.0.0.0",
		"digit two":              "2.0.0.0.0.0.0.0.0.0",
		"whitespace in document": "0. 0.0.0.0.0.0.0.0.0",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Scan(input)
			var syntaxErr *GateSyntaxError
			assert.ErrorAs(t, err, &syntaxErr, "got %v", err)
		})
	}
}
