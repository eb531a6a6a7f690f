// Package validator wraps go-playground/validator with a shared instance,
// the project's custom tags and uniform error formatting.
//
// Custom tags:
//   - aptos_address: "0x" followed by 1 to 64 hex digits.
package validator

import (
	"errors"
	"fmt"
	"regexp"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed heads the joined error returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

var aptosAddressPattern = regexp.MustCompile(`^0[xX][0-9a-fA-F]{1,64}$`)

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	if err := validator.RegisterValidation("aptos_address", isAptosAddress); err != nil {
		panic(err)
	}
}

func isAptosAddress(fl gvalidator.FieldLevel) bool {
	return aptosAddressPattern.MatchString(fl.Field().String())
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` tags. On failure the error wraps
// ErrValidationFailed plus one message per offending field.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
