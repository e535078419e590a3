package registry

import "sort"

// Registry tags recognized by the canonical format.
const (
	TagISBN    = "ISBN"
	TagISRC    = "ISRC"
	TagEIDR    = "EIDR"
	TagISSN    = "ISSN"
	TagDOI     = "DOI"
	TagArtID   = "ART-ID"
	TagDRE     = "DRE"
	TagAPN     = "APN"
	TagISO3166 = "ISO3166"
	TagFCC     = "FCC"
)

// Validator checks one registry's identifier syntax and checksum.
// Validate returns nil when the value is well-formed and a descriptive
// error otherwise. Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Tag returns the registry tag this validator is keyed by.
	Tag() string

	// Validate reports whether value is a well-formed identifier for this
	// registry. The returned error carries a human-readable reason such as
	// "check digit mismatch"; it never indicates registry existence.
	Validate(value string) error
}

// Table maps registry tags to their validators. A Table is immutable after
// construction and safe to share across any number of concurrent callers.
type Table struct {
	byTag map[string]Validator
}

// New builds a table from the given validators. Later validators with a
// duplicate tag replace earlier ones.
func New(validators ...Validator) *Table {
	byTag := make(map[string]Validator, len(validators))
	for _, v := range validators {
		byTag[v.Tag()] = v
	}
	return &Table{byTag: byTag}
}

// Lookup returns the validator for tag, or false if the tag is unknown.
func (t *Table) Lookup(tag string) (Validator, bool) {
	v, ok := t.byTag[tag]
	return v, ok
}

// Tags returns the known tags in sorted order.
func (t *Table) Tags() []string {
	tags := make([]string, 0, len(t.byTag))
	for tag := range t.byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Len returns the number of registered validators.
func (t *Table) Len() int {
	return len(t.byTag)
}

// defaultTable is built once at startup and never mutated.
var defaultTable = New(
	ISBN(),
	ISRC(),
	EIDR(),
	ISSN(),
	DOI(),
	ArtID(),
	DRE(),
	APN(),
	ISO3166(),
	FCC(),
)

// Default returns the process-wide table of all validators defined by the
// current format revision. The returned table is read-only.
func Default() *Table {
	return defaultTable
}
