package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "claimdesk/internal/domain/claim/valueobjects"
)

// registerValidations installs custom binding validations on gin's validator
// engine. Called once from NewRouter.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// claimpriority accepts the priority levels the claim domain knows about.
	_ = v.RegisterValidation("claimpriority", func(fl validator.FieldLevel) bool {
		return vo.Priority(fl.Field().String()).IsValid()
	})
}
