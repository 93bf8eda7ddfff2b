package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidStatus   = errors.New("invalid project status")
	ErrClientRequired  = errors.New("project must belong to a client")
)
