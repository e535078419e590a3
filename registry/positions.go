package registry

// GateInfo describes one fixed gate position of the canonical format: its
// label, the registry tags conventionally carried there, and whether the
// position is reserved for a future revision.
type GateInfo struct {
	Position int
	Label    string
	Tags     []string
	Reserved bool
}

// gatePositions is the fixed position table. Order and assignment are part of
// the canonical format and never change within a format revision.
var gatePositions = [10]GateInfo{
	{Position: 1, Label: "publish", Tags: []string{TagISBN}},
	{Position: 2, Label: "music", Tags: []string{TagISRC}},
	{Position: 3, Label: "mphd", Tags: []string{TagEIDR}},
	{Position: 4, Label: "research", Tags: []string{TagISSN, TagDOI}},
	{Position: 5, Label: "art", Tags: []string{TagArtID}},
	{Position: 6, Label: "dre", Tags: []string{TagDRE}},
	{Position: 7, Label: "5pac3", Reserved: true},
	{Position: 8, Label: "realty", Reserved: true},
	{Position: 9, Label: "juris", Tags: []string{TagISO3166, TagFCC}},
	{Position: 10, Label: "ph", Reserved: true},
}

// Positions returns the fixed gate position table, one entry per position
// 1 through 10. Entries are copies; mutating them leaves the table intact.
func Positions() []GateInfo {
	out := make([]GateInfo, len(gatePositions))
	for i, info := range gatePositions {
		out[i] = copyInfo(info)
	}
	return out
}

// PositionInfo returns the table entry for a 1-based position, or false if
// the position is out of range.
func PositionInfo(position int) (GateInfo, bool) {
	if position < 1 || position > len(gatePositions) {
		return GateInfo{}, false
	}
	return copyInfo(gatePositions[position-1]), true
}

func copyInfo(info GateInfo) GateInfo {
	if info.Tags != nil {
		info.Tags = append([]string(nil), info.Tags...)
	}
	return info
}

// ReservedPosition reports whether the 1-based position is reserved and may
// not carry an active gate.
func ReservedPosition(position int) bool {
	info, ok := PositionInfo(position)
	return ok && info.Reserved
}

// PositionLabel returns the label for a 1-based position, or "" if out of
// range.
func PositionLabel(position int) string {
	info, ok := PositionInfo(position)
	if !ok {
		return ""
	}
	return info.Label
}
