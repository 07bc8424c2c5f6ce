package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/eventfin/event_finance_app/internal/core/domain"
)

// Custom binding validators for the date-only and wall-clock string fields
// used throughout the request DTOs.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dateonly", validDateOnly)
		_ = v.RegisterValidation("timeofday", validTimeOfDay)
	}
}

func validDateOnly(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validTimeOfDay(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := domain.ParseTimeOfDay(s)
	return err == nil
}
