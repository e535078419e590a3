package gatecode

import (
	"fmt"

	"github.com/mediagate/gatecode/registry"
)

// DocumentGates is the fixed number of gates in every document.
const DocumentGates = 10

// MetaKeyType is the metadata key naming the registry an active gate's
// payload belongs to. It is always the first metadata key.
const MetaKeyType = "type"

// Position identifies one of the ten fixed gate slots, 1-based.
type Position int

// The fixed gate positions. Assignment is part of the canonical format and
// never changes within a format revision.
const (
	PositionPublish Position = iota + 1
	PositionMusic
	PositionMPHD
	PositionResearch
	PositionArt
	PositionDRE
	PositionSpace // reserved
	PositionRealty
	PositionJuris
	PositionPlaceholder // reserved
)

// Valid reports whether p is within 1..DocumentGates.
func (p Position) Valid() bool {
	return p >= 1 && p <= DocumentGates
}

// Reserved reports whether p may not carry an active gate at this format
// revision.
func (p Position) Reserved() bool {
	return registry.ReservedPosition(int(p))
}

// Label returns the position's format label (publish, music, ...).
func (p Position) Label() string {
	return registry.PositionLabel(int(p))
}

// String returns the position as "N (label)".
func (p Position) String() string {
	if label := p.Label(); label != "" {
		return fmt.Sprintf("%d (%s)", int(p), label)
	}
	return fmt.Sprintf("%d", int(p))
}

// Pair is one ordered metadata key/value pair. Metadata is kept as a slice,
// never a Go map: pair order is part of the canonical form.
type Pair struct {
	Key   string
	Value string
}

// Gate is one classification slot of a document. The zero Gate is not valid;
// gates are built by the codec (Parse, FromJSON, Codec.Activate) or by
// InactiveGate.
type Gate struct {
	position Position
	active   bool
	meta     []Pair
	value    string
}

// InactiveGate returns the inactive gate for a position: no metadata, no
// payload.
func InactiveGate(position Position) Gate {
	return Gate{position: position}
}

// newActiveGate builds an active gate, copying meta so later mutation of the
// caller's slice cannot reach into the gate.
func newActiveGate(position Position, meta []Pair, value string) Gate {
	copied := make([]Pair, len(meta))
	copy(copied, meta)
	return Gate{position: position, active: true, meta: copied, value: value}
}

// Position returns the gate's 1-based slot.
func (g Gate) Position() Position {
	return g.position
}

// Active reports whether the gate carries a registry reference.
func (g Gate) Active() bool {
	return g.active
}

// Meta returns a copy of the gate's ordered metadata pairs. Inactive gates
// return nil.
func (g Gate) Meta() []Pair {
	if len(g.meta) == 0 {
		return nil
	}
	out := make([]Pair, len(g.meta))
	copy(out, g.meta)
	return out
}

// MetaValue returns the value for a metadata key, or false if absent.
func (g Gate) MetaValue(key string) (string, bool) {
	for _, p := range g.meta {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Type returns the registry tag of an active gate ("" for inactive gates).
func (g Gate) Type() string {
	tag, _ := g.MetaValue(MetaKeyType)
	return tag
}

// Value returns the gate's payload. The second result is false for inactive
// gates, which have no payload at all (not an empty one).
func (g Gate) Value() (string, bool) {
	if !g.active {
		return "", false
	}
	return g.value, true
}

// Equal reports whether two gates are identical, including metadata order.
func (g Gate) Equal(other Gate) bool {
	if g.position != other.position || g.active != other.active || g.value != other.value {
		return false
	}
	if len(g.meta) != len(other.meta) {
		return false
	}
	for i := range g.meta {
		if g.meta[i] != other.meta[i] {
			return false
		}
	}
	return true
}

// Document is an immutable sequence of exactly ten gates in fixed position
// order. Documents are values: every edit (Codec.Activate, Codec.Deactivate)
// returns a new Document and leaves the original untouched.
type Document struct {
	gates [DocumentGates]Gate
}

// NewDocument returns the empty document: all ten gates inactive.
func NewDocument() Document {
	var d Document
	for i := range d.gates {
		d.gates[i] = InactiveGate(Position(i + 1))
	}
	return d
}

// Gate returns the gate at a position, or false if the position is out of
// range.
func (d Document) Gate(position Position) (Gate, bool) {
	if !position.Valid() {
		return Gate{}, false
	}
	return d.gates[position-1], true
}

// Gates returns all ten gates in position order.
func (d Document) Gates() []Gate {
	out := make([]Gate, DocumentGates)
	copy(out, d.gates[:])
	return out
}

// ActiveGates returns the active gates in position order.
func (d Document) ActiveGates() []Gate {
	var out []Gate
	for _, g := range d.gates {
		if g.active {
			out = append(out, g)
		}
	}
	return out
}

// Equal reports whether two documents are identical gate for gate.
func (d Document) Equal(other Document) bool {
	for i := range d.gates {
		if !d.gates[i].Equal(other.gates[i]) {
			return false
		}
	}
	return true
}

// String returns the canonical string form.
func (d Document) String() string {
	return Serialize(d)
}
