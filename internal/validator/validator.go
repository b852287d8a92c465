// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// clockTimeRegex matches bare clock times: HH:MM with optional :SS.
// Activity time slots carry no date component.
var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

// shareTokenRegex matches the 64-hex-character opaque trip share token.
var shareTokenRegex = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("clock_time", validateClockTime)
		_ = v.RegisterValidation("share_token", validateShareToken)
	}
}

func validateClockTime(fl validator.FieldLevel) bool {
	return clockTimeRegex.MatchString(fl.Field().String())
}

func validateShareToken(fl validator.FieldLevel) bool {
	return shareTokenRegex.MatchString(fl.Field().String())
}
