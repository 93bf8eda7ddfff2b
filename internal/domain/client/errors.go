package client

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidStatus  = errors.New("invalid client status")
)
