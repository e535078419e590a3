package gatecode

import "fmt"

// The codec's error taxonomy. Every error is terminal for the call: the codec
// never retries, never repairs, and never returns a partially built Document.
// Each kind carries enough context (position, offending substring, registry
// tag) to render a precise diagnostic, and is matchable with errors.As.

// GateCountError reports an input that does not contain exactly ten gates.
type GateCountError struct {
	Count int
}

func (e *GateCountError) Error() string {
	return fmt.Sprintf("document has %d gate segments, want %d", e.Count, DocumentGates)
}

// GateSyntaxError reports a malformed gate segment: not "0" or "1(...)",
// a missing ';', an empty payload, or a stray parenthesis.
type GateSyntaxError struct {
	Position Position
	Segment  string
	Reason   string
}

func (e *GateSyntaxError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("gate %s: %s", e.Position, e.Reason)
	}
	return fmt.Sprintf("gate %s: %s in %q", e.Position, e.Reason, e.Segment)
}

// MetadataSyntaxError reports a malformed metadata section on an active gate.
type MetadataSyntaxError struct {
	Position Position
	Pair     string
	Reason   string
}

func (e *MetadataSyntaxError) Error() string {
	if e.Pair == "" {
		return fmt.Sprintf("gate %s: %s", e.Position, e.Reason)
	}
	return fmt.Sprintf("gate %s: %s in pair %q", e.Position, e.Reason, e.Pair)
}

// UnknownRegistryTypeError reports a type tag missing from the registry
// table.
type UnknownRegistryTypeError struct {
	Position Position
	Tag      string
}

func (e *UnknownRegistryTypeError) Error() string {
	return fmt.Sprintf("gate %s: unknown registry type %q", e.Position, e.Tag)
}

// ReservedGateError reports an attempt to activate a reserved position.
type ReservedGateError struct {
	Position Position
	Label    string
}

func (e *ReservedGateError) Error() string {
	return fmt.Sprintf("gate %d: position %q is reserved and cannot be activated", int(e.Position), e.Label)
}

// RegistryValidationError reports a payload that fails its registry's syntax
// or checksum rule.
type RegistryValidationError struct {
	Position Position
	Tag      string
	Value    string
	Reason   string
}

func (e *RegistryValidationError) Error() string {
	return fmt.Sprintf("gate %s: invalid %s value %q: %s", e.Position, e.Tag, e.Value, e.Reason)
}

// SchemaError reports a JSON tree with missing, extra, or mistyped fields
// relative to the published document schema.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schema: %s", e.Reason)
	}
	return fmt.Sprintf("schema: %s: %s", e.Path, e.Reason)
}
