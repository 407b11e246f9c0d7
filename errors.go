package stanza

import "errors"

// Sentinel errors for configuration failures. These surface only at
// Build() time, never during configuration, so chained calls remain
// freely reorderable. There is no partial result on failure.
var (
	// ErrNoTable is returned when a statement is built without a target
	// table (From/Into/Table was never called, or called with "").
	ErrNoTable = errors.New("stanza: statement has no target table")

	// ErrNoColumns is returned when a CREATE TABLE or ALTER TABLE is
	// built with zero column definitions.
	ErrNoColumns = errors.New("stanza: table definition has no columns")

	// ErrNoAlias is returned when a union is built without a
	// derived-table alias.
	ErrNoAlias = errors.New("stanza: union has no derived-table alias")

	// ErrNoMembers is returned when a union is built with no member
	// statements.
	ErrNoMembers = errors.New("stanza: union has no members")

	// ErrMarkerMismatch is returned when a predicate's `?` marker count
	// does not equal its bound value count.
	ErrMarkerMismatch = errors.New("stanza: predicate marker/value count mismatch")

	// ErrUnknownTable is returned by schema-validated entry points when
	// the requested table is not part of the schema.
	ErrUnknownTable = errors.New("stanza: table not in schema")
)
