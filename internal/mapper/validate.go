package mapper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Field names in reported errors
// use the json tag, matching what clients sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Flatten converts a validator error into the wire-safe field-error map.
// Non-validator errors collapse into a single "body" entry.
func Flatten(err error) Errors {
	out := NewErrors()

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.Add("body", "invalid payload")
		return out
	}

	for _, fe := range verrs {
		out.Add(fieldKey(fe), message(fe))
	}
	return out
}

// fieldKey strips the payload struct name from the error namespace, keeping
// nested paths and slice indices ("tags[2]").
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "url":
		return "must be a valid URL"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must have at most %s items", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must have at least %s items", fe.Param())
	case "lowercase":
		return "must be lowercase"
	case "hexcolor":
		return "must be a hex color (e.g. #ff8800)"
	default:
		return fmt.Sprintf("failed the '%s' rule", fe.Tag())
	}
}
