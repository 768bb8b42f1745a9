package dto

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by request DTOs.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseAccountType(fl.Field().String())
		return ok
	})
}
