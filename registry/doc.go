// Package registry implements the per-registry identifier validators and the
// fixed tag table the gate codec dispatches on.
//
// Each validator checks shape and, where the registry defines one, the check
// digit of a single identifier value. Validators are pure: they never perform
// network lookups, and a passing value means "syntactically and arithmetically
// well-formed", never "exists in the registry".
//
// The set of tags is closed. Adding a registry is a format revision, not a
// plugin point, so the table is a fixed value built once by Default. Tests
// and experimental deployments can assemble alternate tables with New without
// touching shared state.
package registry
