package ordset

import "github.com/cockroachdb/errors"

var (
	// ErrAllocation signals that a node could not be allocated. Operations
	// failing with ErrAllocation leave the set unchanged.
	ErrAllocation = errors.New("ordset: node allocation failed")
	// ErrInvalidConfig signals an invalid set configuration.
	ErrInvalidConfig = errors.New("ordset: invalid configuration")
)
