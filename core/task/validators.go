package task

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/aryanch/projtrack/core"
)

var (
	taskStatusTag  = "taskstatus"
	taskStatusText = "invalid status"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(taskStatusTag, taskStatusValidation)
	core.RegisterCustomTranslation(validate, translator, taskStatusTag, taskStatusText)
}

// taskStatusValidation checks that the provided status is in AllStatuses
func taskStatusValidation(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	for _, s := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}
