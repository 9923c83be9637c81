package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("username or email already exists")

	// Challenge errors
	ErrChallengeNotFound = errors.New("challenge not found")

	// Score errors
	ErrInvalidScore = errors.New("invalid score submission")
)
