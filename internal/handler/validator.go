package handler

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var validate = &Validator{validate: validator.New()}

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	return validate
}

// ValidateVar validates a single value against a tag expression
func (v *Validator) ValidateVar(value interface{}, tag string) error {
	return v.validate.Var(value, tag)
}
