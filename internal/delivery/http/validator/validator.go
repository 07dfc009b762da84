// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"

	domainerrors "plateful/internal/domain/errors"
)

// EchoValidator wraps a validator instance for use as echo.Echo's Validator.
type EchoValidator struct {
	validate *validatorlib.Validate
}

// New creates the request validator used by the HTTP server.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validatorlib.New(validatorlib.WithRequiredStructEnabled()),
	}
}

// Validate checks a bound request struct against its validate tags.
// Failures surface as the generic validation error so the error handler
// renders a consistent 400 body.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
