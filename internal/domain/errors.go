package domain

import "errors"

// Domain errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrBudgetNotFound     = errors.New("budget not found")

	ErrUsernameTooShort    = errors.New("username is too short")
	ErrUsernameTooLong     = errors.New("username exceeds maximum length")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrDescriptionRequired = errors.New("description is required")
	ErrAmountInvalid       = errors.New("amount must be a number")
	ErrCategoryInvalid     = errors.New("unknown category")
)

// Validation constants
const (
	MinUsernameLength    = 4
	MaxUsernameLength    = 50
	MinPasswordLength    = 6
	MaxDescriptionLength = 100
)
