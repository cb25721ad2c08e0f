package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "required_if":
				errors[field] = field + " is required when " + strings.Replace(e.Param(), " ", " is ", 1)
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

// Check validates i and folds any field errors into a single error, with
// messages in a stable order.
func (cv *CustomValidator) Check(i interface{}) error {
	err := cv.Validate(i)
	if err == nil {
		return nil
	}

	fields := cv.FormatValidationErrors(err)
	if len(fields) == 0 {
		return err
	}

	messages := make([]string, 0, len(fields))
	for _, msg := range fields {
		messages = append(messages, msg)
	}
	sort.Strings(messages)
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(messages, "; "))
}

var ErrInvalid = errors.New("validation failed")
