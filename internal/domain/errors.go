package domain

import "errors"

var (
	// ErrValidation is returned when a request payload fails schema validation
	ErrValidation = errors.New("validation failed")

	// ErrAuthentication is returned when no valid credentials are presented
	ErrAuthentication = errors.New("authentication failed")

	// ErrAuthorization is returned when the authenticated user lacks a required role
	ErrAuthorization = errors.New("insufficient permissions")

	// ErrNotFound is returned when a referenced resource does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when a user exceeds the request quota
	ErrRateLimited = errors.New("rate limit exceeded")
)
