package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrToggleInFlight  = errors.New("completion toggle already in progress")
)
