package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrInvalidEmailFormat      = errors.New("invalid email format")
	ErrInvalidPasswordLength   = errors.New("password must be at least 8 characters")
	ErrInvalidOAuthProvider    = errors.New("invalid oauth provider")
	ErrOwnerAccessRequired     = errors.New("owner access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
