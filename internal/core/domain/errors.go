package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or missing required input.
	ErrInvalidInput = errors.New("invalid input")
)

// DepthExceededError indicates that flattening a block required more
// nested-instance recursion than the depth budget allows. It is raised
// only for genuinely deep acyclic nesting; true cycles are broken
// silently by the visiting guard and never produce this error.
type DepthExceededError struct {
	// Block is the name of the block whose expansion exhausted the budget.
	Block string
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("recursion depth exceeded expanding block %q", e.Block)
}
