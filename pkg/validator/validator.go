package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their query/json name rather than the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &CustomValidator{
		validator: v,
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
			case "oneof":
				errors[field] = field + " must be one of " + strings.ReplaceAll(e.Param(), "' '", "', '")
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				if e.Kind() == reflect.Slice {
					errors[field] = field + " accepts at most " + e.Param() + " values"
				} else {
					errors[field] = field + " must be at most " + e.Param() + " characters"
				}
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
