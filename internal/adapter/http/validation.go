package http

import (
	"errors"
	"reflect"
	"strings"

	"nexhr-leave/internal/domain/leave"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report json names, not Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	// calendar string shaped YYYY-MM-DD; the calendar itself is not checked
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return leave.ValidDate(fl.Field().String())
	})
	_ = v.RegisterValidation("leavetype", func(fl validator.FieldLevel) bool {
		_, ok := leave.ParseType(fl.Field().String())
		return ok
	})
	// decision outcome: Approved or Rejected, any case
	_ = v.RegisterValidation("outcome", func(fl validator.FieldLevel) bool {
		s, ok := leave.ParseStatus(fl.Field().String())
		return ok && s.Terminal()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "isodate":
			out = append(out, FieldError{Field: field, Message: "must be a YYYY-MM-DD date"})
		case "leavetype":
			out = append(out, FieldError{Field: field, Message: "must be one of Annual, Sick, Casual"})
		case "outcome":
			out = append(out, FieldError{Field: field, Message: "must be Approved or Rejected"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
