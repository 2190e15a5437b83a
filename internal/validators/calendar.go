package validators

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-calendar/internal/domain/calendar"
)

// Register adds the calendar query rules to v.
func Register(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"calendar_view":   isCalendarView,
		"calendar_intent": isCalendarIntent,
		"calendar_date":   isCalendarDate,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// RegisterGin installs the rules on the validator gin uses for binding.
func RegisterGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not validator/v10")
	}
	return Register(v)
}

func isCalendarView(fl validator.FieldLevel) bool {
	_, ok := calendar.ParseViewMode(fl.Field().String())
	return ok
}

func isCalendarIntent(fl validator.FieldLevel) bool {
	_, ok := calendar.ParseIntent(fl.Field().String())
	return ok
}

func isCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(calendar.DateFormat, fl.Field().String())
	return err == nil
}
