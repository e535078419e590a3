package gatecode

import "strings"

// Serialize renders a Document to its canonical string: gates in position
// order joined by dots, metadata pairs in stored order, no whitespace.
// Identical documents always serialize to identical bytes, so the output is
// safe to hash or sign.
//
// Serialize never re-validates; documents built by this package are valid by
// construction.
func Serialize(d Document) string {
	var sb strings.Builder
	for i := range d.gates {
		if i > 0 {
			sb.WriteByte('.')
		}
		emitGate(&sb, d.gates[i])
	}
	return sb.String()
}

func emitGate(sb *strings.Builder, g Gate) {
	if !g.active {
		sb.WriteByte('0')
		return
	}
	sb.WriteString("1(")
	for i, p := range g.meta {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}
	sb.WriteByte(';')
	sb.WriteString(g.value)
	sb.WriteByte(')')
}
