package model

import "errors"

var (
	// ErrValidation marks input rejected before any state is written.
	ErrValidation = errors.New("validation failed")
	// ErrStructuralInvariant marks a broken internal invariant. It indicates a defect, not bad input.
	ErrStructuralInvariant = errors.New("structural invariant violated")
	// ErrUniquenessConflict marks a duplicate registration.
	ErrUniquenessConflict = errors.New("uniqueness conflict")
	// ErrNotFound marks an absent key or an unresolved reference.
	ErrNotFound = errors.New("not found")
)
