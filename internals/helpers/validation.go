// file: internals/helpers/validation.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

// BuildFieldErrors maps validator errors into the response's field map.
func BuildFieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	if err == nil {
		return out
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_error"] = []string{err.Error()}
		return out
	}

	for _, fe := range verrs {
		field := fe.Field()

		msg := ""
		switch fe.Tag() {
		case "required":
			msg = "field is required"
		case "uuid":
			msg = "must be a valid uuid"
		case "email":
			msg = "must be a valid email"
		case "oneof":
			msg = "value not allowed"
		case "datetime":
			msg = "invalid date format"
		case "max":
			msg = "value is too long"
		case "min":
			msg = "value is too short"
		case "numeric":
			msg = "digits only"
		default:
			msg = "invalid value"
		}

		out[field] = append(out[field], msg)
	}
	return out
}
