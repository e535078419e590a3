package gatecode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mediagate/gatecode/registry"
)

// JSON mapping. The published shape is:
//
//	{ "gates": [ { "position": 1..10, "active": bool,
//	               "meta"?: {string:string}, "value"?: string } x10 ] }
//
// "meta" and "value" are omitted (not null) on inactive gates. Decoding walks
// the token stream by hand rather than unmarshalling into maps: metadata key
// order is part of the canonical form and must survive the round trip, and
// unknown or mistyped fields must be reported as SchemaErrors, not ignored.

// metaJSON marshals ordered pairs as a JSON object with keys in stored order.
type metaJSON []Pair

func (m metaJSON) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type gateJSON struct {
	Position int      `json:"position"`
	Active   bool     `json:"active"`
	Meta     metaJSON `json:"meta,omitempty"`
	Value    *string  `json:"value,omitempty"`
}

type documentJSON struct {
	Gates []gateJSON `json:"gates"`
}

// ToJSON renders a Document as compact JSON in the published schema shape.
func ToJSON(d Document) ([]byte, error) {
	return json.Marshal(toTree(d))
}

// ToJSONIndent renders a Document as indented JSON.
func ToJSONIndent(d Document, indent string) ([]byte, error) {
	return json.MarshalIndent(toTree(d), "", indent)
}

func toTree(d Document) documentJSON {
	gates := make([]gateJSON, 0, DocumentGates)
	for i, g := range d.gates {
		jg := gateJSON{Position: i + 1, Active: g.active}
		if g.active {
			jg.Meta = metaJSON(g.meta)
			value := g.value
			jg.Value = &value
		}
		gates = append(gates, jg)
	}
	return documentJSON{Gates: gates}
}

// rawGate is one gate object as read off the token stream, before semantic
// validation.
type rawGate struct {
	position    int
	active      bool
	meta        []Pair
	value       string
	hasPosition bool
	hasActive   bool
	hasMeta     bool
	hasValue    bool
}

// fromJSON decodes and validates a JSON document tree. JSON input is held to
// exactly the same semantic rules as string input: the same metadata checks,
// the same reserved-position rule, the same registry validators.
func fromJSON(data []byte, table *registry.Table) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '{', ""); err != nil {
		return Document{}, err
	}

	var gates []rawGate
	sawGates := false
	for dec.More() {
		key, err := objectKey(dec, "")
		if err != nil {
			return Document{}, err
		}
		if key != "gates" {
			return Document{}, &SchemaError{Path: key, Reason: "unknown key"}
		}
		if sawGates {
			return Document{}, &SchemaError{Path: "gates", Reason: "duplicate key"}
		}
		sawGates = true
		gates, err = decodeGateArray(dec)
		if err != nil {
			return Document{}, err
		}
	}
	if err := expectDelim(dec, '}', ""); err != nil {
		return Document{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Document{}, &SchemaError{Reason: "trailing data after document"}
	}
	if !sawGates {
		return Document{}, &SchemaError{Path: "gates", Reason: "missing key"}
	}
	if len(gates) != DocumentGates {
		return Document{}, &GateCountError{Count: len(gates)}
	}

	var d Document
	for i, rg := range gates {
		position := Position(i + 1)
		path := fmt.Sprintf("gates[%d]", i)
		if !rg.hasPosition {
			return Document{}, &SchemaError{Path: path + ".position", Reason: "missing key"}
		}
		if rg.position != i+1 {
			return Document{}, &SchemaError{
				Path:   path + ".position",
				Reason: fmt.Sprintf("is %d, want %d: gate order is fixed", rg.position, i+1),
			}
		}
		if !rg.hasActive {
			return Document{}, &SchemaError{Path: path + ".active", Reason: "missing key"}
		}
		if !rg.active {
			if rg.hasMeta {
				return Document{}, &SchemaError{Path: path + ".meta", Reason: "not allowed on an inactive gate"}
			}
			if rg.hasValue {
				return Document{}, &SchemaError{Path: path + ".value", Reason: "not allowed on an inactive gate"}
			}
			d.gates[i] = InactiveGate(position)
			continue
		}
		if !rg.hasMeta {
			return Document{}, &SchemaError{Path: path + ".meta", Reason: "missing key on an active gate"}
		}
		if !rg.hasValue {
			return Document{}, &SchemaError{Path: path + ".value", Reason: "missing key on an active gate"}
		}
		gate, err := newValidatedGate(position, rg.meta, rg.value, table)
		if err != nil {
			return Document{}, err
		}
		d.gates[i] = gate
	}
	return d, nil
}

func decodeGateArray(dec *json.Decoder) ([]rawGate, error) {
	if err := expectDelim(dec, '[', "gates"); err != nil {
		return nil, err
	}
	var gates []rawGate
	for dec.More() {
		path := fmt.Sprintf("gates[%d]", len(gates))
		rg, err := decodeGateObject(dec, path)
		if err != nil {
			return nil, err
		}
		gates = append(gates, rg)
	}
	if err := expectDelim(dec, ']', "gates"); err != nil {
		return nil, err
	}
	return gates, nil
}

func decodeGateObject(dec *json.Decoder, path string) (rawGate, error) {
	var rg rawGate
	if err := expectDelim(dec, '{', path); err != nil {
		return rg, err
	}
	for dec.More() {
		key, err := objectKey(dec, path)
		if err != nil {
			return rg, err
		}
		switch key {
		case "position":
			if rg.hasPosition {
				return rg, &SchemaError{Path: path + ".position", Reason: "duplicate key"}
			}
			n, err := intValue(dec, path+".position")
			if err != nil {
				return rg, err
			}
			rg.position = n
			rg.hasPosition = true
		case "active":
			if rg.hasActive {
				return rg, &SchemaError{Path: path + ".active", Reason: "duplicate key"}
			}
			b, err := boolValue(dec, path+".active")
			if err != nil {
				return rg, err
			}
			rg.active = b
			rg.hasActive = true
		case "meta":
			if rg.hasMeta {
				return rg, &SchemaError{Path: path + ".meta", Reason: "duplicate key"}
			}
			meta, err := decodeMetaObject(dec, path+".meta")
			if err != nil {
				return rg, err
			}
			rg.meta = meta
			rg.hasMeta = true
		case "value":
			if rg.hasValue {
				return rg, &SchemaError{Path: path + ".value", Reason: "duplicate key"}
			}
			s, err := stringValue(dec, path+".value")
			if err != nil {
				return rg, err
			}
			rg.value = s
			rg.hasValue = true
		default:
			return rg, &SchemaError{Path: path + "." + key, Reason: "unknown key"}
		}
	}
	if err := expectDelim(dec, '}', path); err != nil {
		return rg, err
	}
	return rg, nil
}

// decodeMetaObject reads a {string:string} object preserving key order.
func decodeMetaObject(dec *json.Decoder, path string) ([]Pair, error) {
	if err := expectDelim(dec, '{', path); err != nil {
		return nil, err
	}
	var meta []Pair
	for dec.More() {
		key, err := objectKey(dec, path)
		if err != nil {
			return nil, err
		}
		value, err := stringValue(dec, path+"."+key)
		if err != nil {
			return nil, err
		}
		meta = append(meta, Pair{Key: key, Value: value})
	}
	if err := expectDelim(dec, '}', path); err != nil {
		return nil, err
	}
	return meta, nil
}

// Token stream helpers. Every malformed or mistyped token becomes a
// SchemaError naming the path it occurred at.

func expectDelim(dec *json.Decoder, want rune, path string) error {
	tok, err := dec.Token()
	if err != nil {
		return &SchemaError{Path: path, Reason: "malformed JSON: " + err.Error()}
	}
	if d, ok := tok.(json.Delim); !ok || rune(d) != want {
		return &SchemaError{Path: path, Reason: fmt.Sprintf("expected %q, have %v", want, tok)}
	}
	return nil
}

func objectKey(dec *json.Decoder, path string) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", &SchemaError{Path: path, Reason: "malformed JSON: " + err.Error()}
	}
	key, ok := tok.(string)
	if !ok {
		return "", &SchemaError{Path: path, Reason: fmt.Sprintf("expected object key, have %v", tok)}
	}
	return key, nil
}

func stringValue(dec *json.Decoder, path string) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", &SchemaError{Path: path, Reason: "malformed JSON: " + err.Error()}
	}
	s, ok := tok.(string)
	if !ok {
		return "", &SchemaError{Path: path, Reason: fmt.Sprintf("expected string, have %v", tok)}
	}
	return s, nil
}

func boolValue(dec *json.Decoder, path string) (bool, error) {
	tok, err := dec.Token()
	if err != nil {
		return false, &SchemaError{Path: path, Reason: "malformed JSON: " + err.Error()}
	}
	b, ok := tok.(bool)
	if !ok {
		return false, &SchemaError{Path: path, Reason: fmt.Sprintf("expected bool, have %v", tok)}
	}
	return b, nil
}

func intValue(dec *json.Decoder, path string) (int, error) {
	tok, err := dec.Token()
	if err != nil {
		return 0, &SchemaError{Path: path, Reason: "malformed JSON: " + err.Error()}
	}
	num, ok := tok.(json.Number)
	if !ok {
		return 0, &SchemaError{Path: path, Reason: fmt.Sprintf("expected integer, have %v", tok)}
	}
	n, err := num.Int64()
	if err != nil {
		return 0, &SchemaError{Path: path, Reason: fmt.Sprintf("expected integer, have %s", num)}
	}
	return int(n), nil
}
