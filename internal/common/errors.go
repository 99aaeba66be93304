// Package common defines shared constants and sentinel errors used across
// the client and server layers of MilaVault. Callers should match these
// values with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors. ErrValidation never reaches the remote store:
	// both client and server check required fields before writing.
	ErrValidation = errors.New("name is required")

	// Auth errors.
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrLoginTokenExpired   = errors.New("login token expired")
	ErrLoginTokenConsumed  = errors.New("login token already used")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Generic internal failure, used where details must not leak to clients.
	ErrInternal = errors.New("internal error")
)
