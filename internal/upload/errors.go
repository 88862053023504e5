package upload

import (
	"errors"
	"fmt"

	"github.com/GameItem-Admin/GameItem-Admin/internal/item"
)

var (
	// ErrProcessing is returned when an uploaded file can not be read or decoded.
	// Nothing of the batch is persisted.
	ErrProcessing = errors.New("failed to process uploaded files")

	// ErrInvalidItem is returned when a record of the batch fails validation.
	ErrInvalidItem = errors.New("invalid item input")

	// ErrNoFiles is returned for a batch without files.
	ErrNoFiles = errors.New("no files uploaded")
)

// InvalidItemError reports the record that stopped a batch.
// Records before it are persisted, records after it are not looked at.
type InvalidItemError struct {
	File  string
	Index int // position in the batch, starting at 1
	ID    string
	Err   error
}

func (e *InvalidItemError) Error() string {
	where := fmt.Sprintf("record %d", e.Index)
	if e.ID != "" {
		where += fmt.Sprintf(" (id %q)", e.ID)
	}

	if e.File != "" {
		where += " in " + e.File
	}

	return fmt.Sprintf("%s: %s: %v", ErrInvalidItem, where, e.Err)
}

// Unwrap exposes both ErrInvalidItem and the underlying *item.ValidationError.
func (e *InvalidItemError) Unwrap() []error {
	return []error{ErrInvalidItem, e.Err}
}

// Violations returns the failed constraints of the record, if known.
func (e *InvalidItemError) Violations() []item.Violation {
	var verr *item.ValidationError
	if errors.As(e.Err, &verr) {
		return verr.Violations
	}

	return nil
}
