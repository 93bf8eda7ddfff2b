package calendar

import "errors"

var (
	ErrEventNotFound = errors.New("calendar event not found")
	ErrInvalidKind   = errors.New("invalid event kind")
	ErrInvalidRange  = errors.New("event must end at or after it starts")
)
