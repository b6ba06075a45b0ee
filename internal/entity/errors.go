package entity

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrSlugAlreadyExists  = errors.New("slug already in use")
	ErrClientNotFound     = errors.New("client not found")
	ErrLeadNotFound       = errors.New("lead not found")
	ErrPageNotFound       = errors.New("capture page not found")
)
