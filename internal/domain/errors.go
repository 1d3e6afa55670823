package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid")
)

// DuplicateKeyError reports a uniqueness-constraint violation on a
// specific field (email for customers, sku for products, slug for courses).
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string { return e.Field + " already exists" }

func IsDuplicate(err error) bool {
	var dup *DuplicateKeyError
	return errors.As(err, &dup)
}
