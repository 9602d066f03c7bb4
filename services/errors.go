package services

import (
	"fmt"
)

// Every service operation fails with one of the error kinds below so that
// controllers can map them to HTTP statuses without string matching.

// ValidationError reports malformed input: bad dates, negative amounts,
// empty required fields.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Message
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports a referenced id that does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func notFoundErr(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// PreconditionError reports an operation attempted before a required
// out-of-band step completed (e.g. check-in without identity verification).
type PreconditionError struct {
	Entity  string
	ID      uint
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition: %s %d: %s", e.Entity, e.ID, e.Message)
}

// InvalidTransitionError reports a status move the enforced graph forbids.
type InvalidTransitionError struct {
	Entity string
	ID     uint
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s %d: %s -> %s", e.Entity, e.ID, e.From, e.To)
}

// ConflictError reports a concurrent or conflicting mutation, e.g. two
// check-ins racing for one room, or a duplicate business key.
type ConflictError struct {
	Entity  string
	ID      uint
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s %d: %s", e.Entity, e.ID, e.Message)
}

// PartialFailureError reports a multi-step operation that could not be made
// atomic (the email leg of access-key generation is the only such path) and
// carries which sub-steps succeeded so an operator can reconcile.
type PartialFailureError struct {
	Operation string
	Completed []string
	Failed    string
	Err       error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("partial failure in %s: completed %v, failed at %s: %v",
		e.Operation, e.Completed, e.Failed, e.Err)
}

func (e *PartialFailureError) Unwrap() error { return e.Err }
