package handler

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// isValidationError reports whether the error came from input
// validation, meaning the client gets a 400 with the message rather
// than a 500.
func isValidationError(err error) bool {
	var errs validation.Errors
	if errors.As(err, &errs) {
		return true
	}
	var obj validation.ErrorObject
	return errors.As(err, &obj)
}
