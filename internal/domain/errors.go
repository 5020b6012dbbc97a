package domain

import "errors"

// Validation errors
var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidKind        = errors.New("invalid movement kind")
	ErrInvalidDescription = errors.New("description must be 1-100 characters")
	ErrInvalidName        = errors.New("name must be 1-50 characters")
	ErrInvalidJobTitle    = errors.New("job title must be at most 50 characters")
)

// Lookup and authorization errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrNotOwned           = errors.New("record is not owned by the tenant")
	ErrTenantMissing      = errors.New("tenant user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// IsValidation reports whether err came from rejected user input
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrInvalidDescription) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidJobTitle)
}
