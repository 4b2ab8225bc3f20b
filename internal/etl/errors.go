package etl

import "errors"

var (
	// ErrEmptyInput means a structurally valid input table has zero rows.
	ErrEmptyInput = errors.New("input table is empty")

	// ErrJoinProducedNothing means the fact-table join chain matched no
	// rows. This is a valid outcome of inner-join semantics, surfaced as a
	// distinct sentinel so callers can report it instead of persisting an
	// empty table silently.
	ErrJoinProducedNothing = errors.New("fact table join produced no rows")
)
