// Package gatecode implements the canonical gate-code codec: a fixed-width,
// deterministic text encoding that maps a media item to zero or more external
// registry identifiers (ISBN, ISRC, EIDR, ART-ID, ...) in one string.
//
// # Canonical form
//
// A document is exactly ten gates joined by dots. Each gate is either the
// single character 0 (inactive) or an active gate carrying ordered metadata
// and a registry identifier payload:
//
//	Document := Gate ('.' Gate){9}
//	Gate     := "0" | "1(" MetaPairs ";" Value ")"
//	MetaPairs:= Pair ("," Pair)*
//	Pair     := Key "=" Val
//
// No whitespace is ever emitted or accepted. Gate positions are fixed by the
// format (1 publish, 2 music, 3 mphd, 4 research, 5 art, 6 dre, 7 and 8 and
// 10 reserved, 9 juris) and are assigned by index, never written into the
// string. Metadata key order is part of the canonical form and survives every
// conversion.
//
// # Example
//
//	1(type=ISBN;9780306406157).0.0.0.0.0.0.0.0.0
//
// # Laws
//
// For any canonical string s and any valid Document d:
//
//	Serialize(must(Parse(s))) == s
//	must(Parse(Serialize(d))) == d
//	must(FromJSON(must(ToJSON(d)))) == d
//
// Parsing is all-or-nothing: a Document is either fully valid, with every
// active payload checked against its registry validator, or the call returns
// a typed error and no Document at all.
//
// The codec is pure and stateless per call. The only shared state is the
// read-only registry table (see the registry package), so documents may be
// parsed and serialized from any number of goroutines without coordination.
package gatecode
