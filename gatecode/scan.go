package gatecode

import "strings"

// GateToken is one gate segment as split out of a canonical string, before
// metadata parsing and registry validation.
type GateToken struct {
	Position Position
	Active   bool
	RawMeta  string // unparsed metadata section, "" when inactive
	RawValue string // unparsed payload, "" when inactive
}

// Scan splits a canonical string into exactly ten gate tokens. A dot only
// separates gates at parenthesis depth zero, so payloads containing dots
// (DOIs, EIDR identifiers) stay intact. Scan checks segment shape only;
// metadata pairs and registry payloads are checked by the builder.
func Scan(input string) ([]GateToken, error) {
	segments, unclosed := splitGates(input)
	if unclosed {
		last := segments[len(segments)-1]
		return nil, &GateSyntaxError{
			Position: Position(len(segments)),
			Segment:  last,
			Reason:   "unclosed parenthesis",
		}
	}
	if len(segments) != DocumentGates {
		return nil, &GateCountError{Count: len(segments)}
	}

	tokens := make([]GateToken, 0, DocumentGates)
	for i, segment := range segments {
		token, err := scanSegment(Position(i+1), segment)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// splitGates splits on '.' outside parentheses. An unbalanced '(' would
// otherwise swallow every remaining dot, so it is reported to the caller
// rather than left for scanSegment to misdiagnose as a count mismatch.
func splitGates(input string) (segments []string, unclosed bool) {
	depth := 0
	start := 0
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '.':
			if depth == 0 {
				segments = append(segments, input[start:i])
				start = i + 1
			}
		}
	}
	return append(segments, input[start:]), depth != 0
}

// scanSegment checks one segment against the two permitted shapes: the single
// character "0", or "1(" metadata ";" value ")".
func scanSegment(position Position, segment string) (GateToken, error) {
	if segment == "0" {
		return GateToken{Position: position}, nil
	}
	if segment == "" {
		return GateToken{}, &GateSyntaxError{Position: position, Reason: "empty gate segment"}
	}
	if segment[0] == '0' {
		return GateToken{}, &GateSyntaxError{Position: position, Segment: segment, Reason: "inactive gate must be exactly \"0\""}
	}
	if !strings.HasPrefix(segment, "1(") || !strings.HasSuffix(segment, ")") {
		return GateToken{}, &GateSyntaxError{Position: position, Segment: segment, Reason: "gate must be \"0\" or \"1(...)\""}
	}

	body := segment[2 : len(segment)-1]
	if body == "" {
		return GateToken{}, &GateSyntaxError{Position: position, Segment: segment, Reason: "empty gate body"}
	}
	if strings.ContainsAny(body, "()") {
		return GateToken{}, &GateSyntaxError{Position: position, Segment: segment, Reason: "parenthesis inside gate body"}
	}

	semi := strings.IndexByte(body, ';')
	if semi < 0 {
		return GateToken{}, &GateSyntaxError{Position: position, Segment: segment, Reason: "missing ';' between metadata and value"}
	}
	rawMeta, rawValue := body[:semi], body[semi+1:]
	if rawValue == "" {
		return GateToken{}, &GateSyntaxError{Position: position, Segment: segment, Reason: "empty gate value"}
	}

	return GateToken{Position: position, Active: true, RawMeta: rawMeta, RawValue: rawValue}, nil
}
