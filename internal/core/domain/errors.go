package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)
	ErrSessionNotFound = fmt.Errorf("session %w", ErrNotFound)

	ErrDuplicateUsername = errors.New("username already exists")
	ErrInvalidCredential = errors.New("invalid username or password")
	ErrInvalidPasskey    = errors.New("invalid passkey for hospital registration")
	ErrInvalidInput      = errors.New("invalid input")
)
