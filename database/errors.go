package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrPreconditionFailed reports that an update or delete found no row
// matching the caller's expected current values. It is a business outcome,
// not a system fault: the caller should re-read the row and retry.
var ErrPreconditionFailed = errors.New("precondition failed")

// ErrConstraintViolation reports a uniqueness or check rule broken by a
// write. The attempted mutation has been rolled back in full.
var ErrConstraintViolation = errors.New("constraint violation")

// ErrReferentialIntegrity reports a foreign-key rule broken by a write or
// delete: a dependent row with no parent, or a parent still referenced.
var ErrReferentialIntegrity = errors.New("referential integrity violation")

// CreationError wraps any failure during catalog creation. The transaction
// that produced it left no partial row behind.
type CreationError struct {
	Err error
}

func (e *CreationError) Error() string { return fmt.Sprintf("creation failed: %v", e.Err) }

func (e *CreationError) Unwrap() error { return e.Err }

// PreconditionError carries the operation-specific message for a failed
// expected-state match. errors.Is(err, ErrPreconditionFailed) holds.
type PreconditionError struct {
	Op string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("no matching record found for %s", e.Op)
}

func (e *PreconditionError) Is(target error) bool { return target == ErrPreconditionFailed }

// classifyError maps translated engine errors onto the kinds callers are
// expected to distinguish. Anything unrecognized passes through unchanged.
func classifyError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrReferentialIntegrity, err)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	default:
		return err
	}
}
