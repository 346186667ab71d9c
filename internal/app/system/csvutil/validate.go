// internal/app/system/csvutil/validate.go
package csvutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// rowReason turns a validator error into a one-line reason.
func rowReason(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, describe(fe))
	}
	return strings.Join(parts, "; ")
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required", "min":
		return "missing " + field
	case "max":
		return fmt.Sprintf("%s longer than %s characters", field, fe.Param())
	case "email":
		return "invalid email " + quote(fe.Value())
	case "datetime":
		return fmt.Sprintf("invalid date %s (want YYYY-MM-DD)", quote(fe.Value()))
	case "oneof":
		return fmt.Sprintf("invalid slot %s (allowed: %s)", quote(fe.Value()), strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}

func quote(v any) string {
	return fmt.Sprintf("%q", fmt.Sprint(v))
}
