package avl

import "errors"

var (
	// ErrNoOrder signals a tree created without an ordering predicate.
	ErrNoOrder = errors.New("avl: ordering predicate is required")
	// ErrInvariant signals a structural invariant violation found by Check.
	ErrInvariant = errors.New("avl: tree invariant violated")
)
