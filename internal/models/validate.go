package models

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validation errors
var (
	ErrMissingField = errors.New("required field missing")
	ErrInvalidField = errors.New("field value invalid")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// check runs struct validation and folds validator errors into the
// package sentinels, listing the offending fields.
func check(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	var missing, invalid []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "required_with":
			missing = append(missing, fe.Namespace())
		default:
			invalid = append(invalid, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(invalid, ", "))
}

// ValidateEmail checks a single email address
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email", ErrMissingField)
	}
	if err := validatorInstance().Var(email, "email"); err != nil {
		return fmt.Errorf("%w: email %q", ErrInvalidField, email)
	}
	return nil
}
