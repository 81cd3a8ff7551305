package controllers

import "errors"

// Sentinel errors routes translate into response statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrMissingFile        = errors.New("no file uploaded")
	ErrMissingFields      = errors.New("missing required fields")
)
