package utils

import (
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	if Validate == nil {
		Validate = validator.New()
	}
}

// ValidateStruct validates s with the shared validator, creating it on first use.
func ValidateStruct(s any) error {
	InitValidator()
	return Validate.Struct(s)
}
