package gatecode

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediagate/gatecode/registry"
)

type acceptAllValidator struct {
	tag string
}

func (v acceptAllValidator) Tag() string { return v.tag }

func (v acceptAllValidator) Validate(value string) error {
	if value == "" {
		return fmt.Errorf("empty value")
	}
	return nil
}

func TestCodecWithCustomTable(t *testing.T) {
	table := registry.New(registry.ISBN(), acceptAllValidator{tag: "X-EXP"})
	codec := New(table)

	input := "1(type=X-EXP;anything-goes).0.0.0.0.0.0.0.0.0"
	d, err := codec.Parse(input)
	require.NoError(t, err)
	assert.Equal(t, input, codec.Serialize(d))

	// The default codec has no such tag.
	_, err = Parse(input)
	var unknownErr *UnknownRegistryTypeError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "X-EXP", unknownErr.Tag)
}

func TestZeroCodecUsesDefaultTable(t *testing.T) {
	var codec Codec
	d, err := codec.Parse("1(type=ISBN;9781119473862).0.0.0.0.0.0.0.0.0")
	require.NoError(t, err)
	assert.Len(t, d.ActiveGates(), 1)
	assert.Equal(t, registry.Default(), codec.Table())
}

func TestActivateProducesNewDocument(t *testing.T) {
	codec := Default()
	original := NewDocument()

	edited, err := codec.Activate(original, PositionMusic, []Pair{{Key: "type", Value: "ISRC"}}, "US-RC1-17-00001")
	require.NoError(t, err)

	g, _ := edited.Gate(PositionMusic)
	assert.True(t, g.Active())
	assert.Equal(t, "ISRC", g.Type())

	// The original is untouched.
	g, _ = original.Gate(PositionMusic)
	assert.False(t, g.Active())
	assert.Equal(t, allInactive, Serialize(original))
}

func TestActivateValidates(t *testing.T) {
	codec := Default()
	d := NewDocument()

	_, err := codec.Activate(d, PositionPublish, []Pair{{Key: "type", Value: "ISBN"}}, "9781119473863")
	var valErr *RegistryValidationError
	assert.ErrorAs(t, err, &valErr)

	_, err = codec.Activate(d, PositionSpace, []Pair{{Key: "type", Value: "ISBN"}}, "9781119473862")
	var reservedErr *ReservedGateError
	assert.ErrorAs(t, err, &reservedErr)

	_, err = codec.Activate(d, Position(11), []Pair{{Key: "type", Value: "ISBN"}}, "9781119473862")
	var syntaxErr *GateSyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestActivateCopiesMetadata(t *testing.T) {
	codec := Default()
	meta := []Pair{{Key: "type", Value: "ISBN"}}

	d, err := codec.Activate(NewDocument(), PositionPublish, meta, "9781119473862")
	require.NoError(t, err)

	meta[0].Value = "mutated"
	g, _ := d.Gate(PositionPublish)
	assert.Equal(t, "ISBN", g.Type())
}

func TestDeactivate(t *testing.T) {
	codec := Default()
	d, err := codec.Parse("1(type=ISBN;9781119473862).0.0.0.0.0.0.0.0.0")
	require.NoError(t, err)

	cleared, err := codec.Deactivate(d, PositionPublish)
	require.NoError(t, err)
	assert.Equal(t, allInactive, Serialize(cleared))
	assert.Len(t, d.ActiveGates(), 1, "original unchanged")
}

// The codec is a pure function of its input over a read-only table, so
// independent documents may be converted from any number of goroutines.
func TestConcurrentUse(t *testing.T) {
	inputs := []string{
		allInactive,
		"1(type=ISBN;9781119473862).0.0.0.0.0.0.0.0.0",
		"0.1(type=ISRC;USRC11700001).0.0.0.0.0.0.0.0",
		"1(type=ISBN;9780306406157).0.0.0.1(type=ART-ID;ART-US-2025-000083-7).0.0.0.1(type=ISO3166;US).0",
		"0.0.0.1(type=DOI;10.1000/182).0.0.0.0.0.0",
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for round := 0; round < 200; round++ {
				input := inputs[round%len(inputs)]
				d, err := Parse(input)
				assert.NoError(t, err)
				assert.Equal(t, input, Serialize(d))

				data, err := ToJSON(d)
				assert.NoError(t, err)
				back, err := FromJSON(data)
				assert.NoError(t, err)
				assert.True(t, d.Equal(back))
			}
		}()
	}
	wg.Wait()
}
