package sim

import "errors"

var (
	// ErrInvalidCapacity is returned when a simulation is asked to run with fewer than one frame.
	ErrInvalidCapacity = errors.New("invalid frame capacity")
	// ErrInvalidReference is returned by ParseReferences for tokens that are not page numbers.
	ErrInvalidReference = errors.New("invalid page reference")
	// ErrUnknownPolicy is returned for replacement policy names outside ValidPolicies.
	ErrUnknownPolicy = errors.New("unknown replacement policy")
)
