package team

import "errors"

var (
	ErrMemberNotFound = errors.New("team member not found")
	ErrEmailExists    = errors.New("email already registered")
	ErrInvalidRole    = errors.New("invalid role")
)
