package core

import (
	"reflect"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/trezcool/darasa/core/schedule"
)

var (
	// custom validation tags & texts
	weekdayTag  = "weekday"
	weekdayText = "must be a weekday name (Monday .. Sunday)"

	timeRangeTag  = "timerange"
	timeRangeText = "must be a time range such as \"10:00 AM - 11:00 AM\" or \"14:00 - 15:00\""

	batchStatusTag  = "batchstatus"
	batchStatusText = "must be one of: active, suspended, completed, cancelled"

	requiredTag     = "required"
	requiredWithTag = "required_with"
	requiredText    = "this field is required"
)

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(weekdayTag, weekdayValidation)
	RegisterCustomTranslation(validate, translator, weekdayTag, weekdayText)

	_ = validate.RegisterValidation(timeRangeTag, timeRangeValidation)
	RegisterCustomTranslation(validate, translator, timeRangeTag, timeRangeText)

	_ = validate.RegisterValidation(batchStatusTag, batchStatusValidation)
	RegisterCustomTranslation(validate, translator, batchStatusTag, batchStatusText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
	RegisterCustomTranslation(validate, translator, requiredWithTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Custom Global Validators

// weekdayValidation only allows full English weekday names.
func weekdayValidation(fl validator.FieldLevel) bool {
	_, err := schedule.ParseWeekday(fl.Field().String())
	return err == nil
}

// timeRangeValidation only allows parseable time ranges; the engine itself
// stays tolerant of legacy rows, new data does not get to be malformed.
func timeRangeValidation(fl validator.FieldLevel) bool {
	_, err := schedule.ParseTimeRange(fl.Field().String())
	return err == nil
}

// batchStatusValidation only allows the canonical batch statuses.
func batchStatusValidation(fl validator.FieldLevel) bool {
	return schedule.Status(fl.Field().String()).IsValid()
}
