package gatecode

import "github.com/mediagate/gatecode/registry"

// Codec binds the parser, builder, and JSON decoder to one registry table.
// The table is passed in rather than read from a global so tests and
// experimental deployments can substitute their own tag set without touching
// process-wide state. Codec is a small value, safe to copy and to use from
// any number of goroutines.
type Codec struct {
	table *registry.Table
}

// New returns a codec bound to the given table. A nil table means
// registry.Default().
func New(table *registry.Table) Codec {
	if table == nil {
		table = registry.Default()
	}
	return Codec{table: table}
}

// Table returns the registry table this codec dispatches on.
func (c Codec) Table() *registry.Table {
	return c.tableOrDefault()
}

func (c Codec) tableOrDefault() *registry.Table {
	if c.table == nil {
		return registry.Default()
	}
	return c.table
}

// Parse converts a canonical string into a Document, running every active
// payload through its registry validator. Construction is all-or-nothing.
func (c Codec) Parse(input string) (Document, error) {
	tokens, err := Scan(input)
	if err != nil {
		return Document{}, err
	}
	return build(tokens, c.tableOrDefault())
}

// Build assembles pre-scanned tokens into a Document under the same rules as
// Parse.
func (c Codec) Build(tokens []GateToken) (Document, error) {
	return build(tokens, c.tableOrDefault())
}

// Serialize renders a Document to its canonical string.
func (c Codec) Serialize(d Document) string {
	return Serialize(d)
}

// FromJSON decodes a JSON document tree, re-validating exactly as Parse does.
func (c Codec) FromJSON(data []byte) (Document, error) {
	return fromJSON(data, c.tableOrDefault())
}

// ToJSON renders a Document as compact JSON.
func (c Codec) ToJSON(d Document) ([]byte, error) {
	return ToJSON(d)
}

// Activate returns a copy of d with the given position set to an active gate
// carrying meta and value, validated under this codec's table. d itself is
// unchanged.
func (c Codec) Activate(d Document, position Position, meta []Pair, value string) (Document, error) {
	if !position.Valid() {
		return Document{}, &GateSyntaxError{Position: position, Reason: "position out of range"}
	}
	gate, err := newValidatedGate(position, meta, value, c.tableOrDefault())
	if err != nil {
		return Document{}, err
	}
	d.gates[position-1] = gate
	return d, nil
}

// Deactivate returns a copy of d with the given position inactive.
func (c Codec) Deactivate(d Document, position Position) (Document, error) {
	if !position.Valid() {
		return Document{}, &GateSyntaxError{Position: position, Reason: "position out of range"}
	}
	d.gates[position-1] = InactiveGate(position)
	return d, nil
}

// defaultCodec backs the package-level convenience functions. It shares the
// read-only default table, so it is safe for concurrent use.
var defaultCodec = Codec{table: registry.Default()}

// Default returns a codec bound to the default registry table.
func Default() Codec {
	return defaultCodec
}

// Parse converts a canonical string into a Document using the default
// registry table.
func Parse(input string) (Document, error) {
	return defaultCodec.Parse(input)
}

// FromJSON decodes a JSON document tree using the default registry table.
func FromJSON(data []byte) (Document, error) {
	return defaultCodec.FromJSON(data)
}
