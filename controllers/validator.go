package controllers

import (
	"restaurant-backend/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateRequest runs struct-tag validation and converts the first failure
// into a domain ValidationError.
func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidation("field '%s' failed validation '%s'", fe.Field(), fe.Tag())
	}
	return apperrors.NewValidation("invalid request payload")
}
