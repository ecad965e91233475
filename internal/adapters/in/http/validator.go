package http

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call ctx.Validate on bound request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request DTO struct tags.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate runs struct-tag validation on the bound request.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
