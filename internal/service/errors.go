package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDetailsInvalid     = errors.New("details document invalid")
)
