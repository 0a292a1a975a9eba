package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError reports a single field-level rule failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate *validator.Validate

// Layouts accepted by the releasedate rule.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func init() {
	validate = validator.New()

	// Report fields by their json names, not Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("releasedate", isCalendarDate); err != nil {
		panic(err)
	}
}

func isCalendarDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// Validate checks a payload struct against its `validate` tags and returns
// every violation in field declaration order, one entry per violated field.
// An empty result means the payload is acceptable. The function only reads
// its input, so it is safe to unit-test without any HTTP machinery.
func Validate(payload interface{}) []FieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []FieldError{{Field: "payload", Message: "payload is not a valid object"}}
	}

	violations := make([]FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return violations
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "releasedate":
		return fe.Field() + " must be a valid date"
	default:
		return fe.Field() + " is invalid"
	}
}
