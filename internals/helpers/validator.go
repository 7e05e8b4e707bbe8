package helper

import (
	"github.com/go-playground/validator/v10"
)

// ValidationErrorMap meratakan validator.ValidationErrors → map field → pesan tag
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
