package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// NewValidator returns a validator with the custom tags used by the DTOs.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// anyuuid accepts every form uuid.Parse does, upper or lower case.
	if err := v.RegisterValidation("anyuuid", func(fl validator.FieldLevel) bool {
		_, err := uuid.Parse(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}
