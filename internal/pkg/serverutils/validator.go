package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries a 400-worthy message built from field errors.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		fieldErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return &ValidationError{Message: err.Error()}
		}
		messages := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			messages = append(messages, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
		}
		return &ValidationError{Message: strings.Join(messages, "; ")}
	}
	return nil
}
