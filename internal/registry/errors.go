package registry

import (
	"errors"
	"fmt"
)

// RegistrationErrorCode categorizes registration failures.
type RegistrationErrorCode string

const (
	// ErrCodeDuplicateTest indicates the suite:name pair is already registered.
	ErrCodeDuplicateTest RegistrationErrorCode = "DUPLICATE_TEST"

	// ErrCodeInvalidName indicates an empty or malformed suite or test name.
	ErrCodeInvalidName RegistrationErrorCode = "INVALID_NAME"

	// ErrCodeNilFunc indicates the test has no implementation function.
	ErrCodeNilFunc RegistrationErrorCode = "NIL_FUNC"
)

// RegistrationError is returned by Add and used as the panic value of
// Register and Test.
type RegistrationError struct {
	Code    RegistrationErrorCode
	Suite   string
	Name    string
	Message string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("registry: [%s] %s:%s: %s", e.Code, e.Suite, e.Name, e.Message)
}

// IsDuplicate reports whether err is a duplicate registration error.
func IsDuplicate(err error) bool {
	return hasCode(err, ErrCodeDuplicateTest)
}

func hasCode(err error, code RegistrationErrorCode) bool {
	var regErr *RegistrationError
	return errors.As(err, &regErr) && regErr.Code == code
}
