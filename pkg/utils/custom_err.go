package utils

import "errors"

var (
	ErrPlaceNotFound    = errors.New("place not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrAccountNotFound  = errors.New("account not found")

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountBanned      = errors.New("account is banned")
	ErrForbidden          = errors.New("forbidden")

	ErrValidation      = errors.New("validation failed")
	ErrUnknownCategory = errors.New("unknown category name")
	ErrReplyDepth      = errors.New("replies cannot be replied to")
	ErrInvalidBounds   = errors.New("invalid bounding box")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)

// ValidationError carries a field-specific message while still matching
// ErrValidation through errors.Is.
func ValidationError(msg string) error {
	return &validationError{msg: msg}
}

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrValidation }
