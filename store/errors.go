package store

import "fmt"

// ValidationError indicates that an add operation received a missing or
// malformed field. The store is left unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// ReferenceError indicates that an operation referenced an entity that does
// not exist in its store.
type ReferenceError struct {
	Entity string
	ID     int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s not found: %d", e.Entity, e.ID)
}
