package model

import "errors"

var (
	// ErrMissingEntity means a rule needed a command center, barracks,
	// template or resource node that the snapshot does not have.
	ErrMissingEntity = errors.New("missing entity")

	// ErrInsufficientUnits means a rule addressed a role slot (e.g. the
	// second worker) that is not populated this tick.
	ErrInsufficientUnits = errors.New("insufficient units")

	// ErrMalformedSnapshot is returned when the snapshot breaks its own
	// structural invariants. It fails the whole tick.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	ErrDuplicateAssignment = errors.New("unit already assigned this tick")
	ErrUnownedUnit         = errors.New("unit not owned by controller")
)
