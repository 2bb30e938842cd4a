package services

import "errors"

// Sentinel errors matched with errors.Is in the handlers and mapped onto
// HTTP status codes there.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")

	ErrEntryNotFound = errors.New("art entry not found")
	ErrAccessDenied  = errors.New("access denied")

	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryCodeTaken = errors.New("a category with this code already exists")
	ErrCategoryInUse     = errors.New("category is in use")

	ErrReportNotFound = errors.New("report not found")
)

// ValidationError carries a client-facing message for malformed input.
// Handlers map it to 400.
type ValidationError string

func (v ValidationError) Error() string { return string(v) }
