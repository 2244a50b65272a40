package validator

import (
	"log"

	"contest_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные правила для перечислений из models.
// Пустые значения проходят: для них есть 'required'.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("user-role", validateUserRole)
	mustRegister("vote-type", validateVoteType)
	mustRegister("media-status", validateMediaStatus)
	mustRegister("gender", validateGender)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.UserRole(value).IsValid()
}

func validateVoteType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.VoteType(value).IsValid()
}

func validateMediaStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.MediaStatus(value).IsValid()
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.Gender(value).IsValid()
}
