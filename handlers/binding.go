package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"pcos/models"
)

// RegisterBindingRules installs the campus-specific binding validators so
// request structs can use `binding:"weekday"`, `binding:"clocktime"` and
// `binding:"bookingtime"` tags.
func RegisterBindingRules() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		return models.IsWeekday(fl.Field().String())
	})
	_ = v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		_, err := models.ParseClock(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("bookingtime", func(fl validator.FieldLevel) bool {
		_, err := models.ParseBookingTime(fl.Field().String())
		return err == nil
	})
}
