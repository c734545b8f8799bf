package tabunganku

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure modes the presentation layer branches on.
// All of them are rejected before any state change.
var (
	// ErrNotFound indicates a reference to a student that is not on the roster.
	ErrNotFound = errors.New("student not found")
	// ErrValidation indicates malformed input to a mutation.
	ErrValidation = errors.New("invalid input")
	// ErrEmptyImport indicates an import source that parsed fine but produced
	// no usable rows. Distinct from ErrImportFormat so the caller can show a
	// "no valid rows" message instead of a parse failure.
	ErrEmptyImport = errors.New("no valid rows in import")
	// ErrImportFormat indicates an import source that could not be parsed at
	// all. No roster mutation happens in that case.
	ErrImportFormat = errors.New("unreadable import source")
	// ErrPersistence indicates a recoverable load/save failure. Callers treat
	// it like missing state and start from defaults.
	ErrPersistence = errors.New("persistence failure")
)

// InsufficientFundsError rejects a withdrawal that would drive a student's
// balance below zero. It carries the current balance for display.
type InsufficientFundsError struct {
	StudentName string
	Balance     Money
	Requested   Money
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: %s holds %s, withdrawal of %s rejected", e.StudentName, e.Balance, e.Requested)
}
