package gatecode

import (
	"strings"

	"github.com/mediagate/gatecode/registry"
)

// build assembles ten tokens into a Document, running metadata parsing and
// registry validation on every active token. This is the single place the
// fixed gate order is enforced: positions come from the token index, never
// from content, and are never reordered.
func build(tokens []GateToken, table *registry.Table) (Document, error) {
	if len(tokens) != DocumentGates {
		return Document{}, &GateCountError{Count: len(tokens)}
	}

	var d Document
	for i, token := range tokens {
		position := Position(i + 1)
		if !token.Active {
			d.gates[i] = InactiveGate(position)
			continue
		}
		meta, err := parseMeta(position, token.RawMeta)
		if err != nil {
			return Document{}, err
		}
		gate, err := newValidatedGate(position, meta, token.RawValue, table)
		if err != nil {
			return Document{}, err
		}
		d.gates[i] = gate
	}
	return d, nil
}

// parseMeta splits a raw metadata section into ordered pairs. Each pair must
// contain exactly one '=' with a non-empty key and value; written order is
// preserved for canonical re-serialization.
func parseMeta(position Position, raw string) ([]Pair, error) {
	if raw == "" {
		return nil, &MetadataSyntaxError{Position: position, Reason: "empty metadata section"}
	}
	parts := strings.Split(raw, ",")
	meta := make([]Pair, 0, len(parts))
	for _, part := range parts {
		if strings.Count(part, "=") != 1 {
			return nil, &MetadataSyntaxError{Position: position, Pair: part, Reason: "pair must contain exactly one '='"}
		}
		eq := strings.IndexByte(part, '=')
		key, value := part[:eq], part[eq+1:]
		if key == "" {
			return nil, &MetadataSyntaxError{Position: position, Pair: part, Reason: "empty metadata key"}
		}
		if value == "" {
			return nil, &MetadataSyntaxError{Position: position, Pair: part, Reason: "empty metadata value"}
		}
		meta = append(meta, Pair{Key: key, Value: value})
	}
	return meta, nil
}

// newValidatedGate runs the full semantic pass for one active gate. It is
// shared by the string parser, the JSON decoder, and Codec.Activate, so every
// input path is held to exactly the same rules.
func newValidatedGate(position Position, meta []Pair, value string, table *registry.Table) (Gate, error) {
	for i, p := range meta {
		if p.Key == "" || p.Value == "" {
			return Gate{}, &MetadataSyntaxError{Position: position, Pair: metaPairText(p), Reason: "empty metadata key or value"}
		}
		if strings.ContainsAny(p.Key, "=,;()") || strings.ContainsAny(p.Value, "=,;()") {
			return Gate{}, &MetadataSyntaxError{Position: position, Pair: metaPairText(p), Reason: "key and value may not contain '=', ',', ';' or parentheses"}
		}
		for _, earlier := range meta[:i] {
			if earlier.Key == p.Key {
				return Gate{}, &MetadataSyntaxError{Position: position, Pair: metaPairText(p), Reason: "duplicate metadata key"}
			}
		}
	}
	if value == "" {
		return Gate{}, &GateSyntaxError{Position: position, Reason: "empty gate value"}
	}
	if strings.ContainsAny(value, "()") {
		return Gate{}, &GateSyntaxError{Position: position, Segment: value, Reason: "value may not contain parentheses"}
	}

	if position.Reserved() {
		return Gate{}, &ReservedGateError{Position: position, Label: position.Label()}
	}

	if len(meta) == 0 || meta[0].Key != MetaKeyType {
		return Gate{}, &MetadataSyntaxError{Position: position, Reason: "first metadata key must be \"type\""}
	}
	tag := meta[0].Value
	validator, ok := table.Lookup(tag)
	if !ok {
		return Gate{}, &UnknownRegistryTypeError{Position: position, Tag: tag}
	}
	if err := validator.Validate(value); err != nil {
		return Gate{}, &RegistryValidationError{
			Position: position,
			Tag:      tag,
			Value:    value,
			Reason:   err.Error(),
		}
	}
	return newActiveGate(position, meta, value), nil
}

func metaPairText(p Pair) string {
	return p.Key + "=" + p.Value
}
