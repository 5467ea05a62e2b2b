package models

import "errors"

var (
	// ErrUserExists is returned when registering an email that is already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong password,
	// so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTaskNotFound covers both a nonexistent task and a task owned by
	// another user.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidToken is returned for malformed, tampered or expired tokens.
	ErrInvalidToken = errors.New("invalid token")
)
