package person

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/aryanch/projtrack/core"
)

var (
	personRoleTag  = "personrole"
	personRoleText = "invalid role"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(personRoleTag, personRoleValidation)
	core.RegisterCustomTranslation(validate, translator, personRoleTag, personRoleText)
}

// personRoleValidation checks that the provided role is in AllRoles
func personRoleValidation(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
