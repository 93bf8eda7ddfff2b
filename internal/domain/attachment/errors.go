package attachment

import (
	"errors"
	"fmt"
)

var (
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrInvalidOwnerType   = errors.New("invalid owner type")
	ErrOwnerNotFound      = errors.New("owner not found")
	ErrConfirmRequired    = errors.New("delete requires explicit confirmation")
	ErrDeleteInFlight     = errors.New("delete already in progress for this attachment")
	ErrEmptyFile          = errors.New("file is empty")
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrInvalidCategory    = errors.New("invalid file category")
)

// FetchError names which of the aggregator inputs failed to load, so
// the dashboard can show a retryable per-resource notification.
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
