package utils

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateTimeLocalLayout is the minute precision layout of an HTML datetime-local input.
const DateTimeLocalLayout = "2006-01-02T15:04"

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("datetime_local", validateDateTimeLocal)
	validate.RegisterValidation("no_whitespace", validateNoWhitespace)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

// validateDateTimeLocal accepts values the admin form produces: a
// datetime-local value, optionally followed by seconds or a zone.
func validateDateTimeLocal(fl validator.FieldLevel) bool {
	_, err := ParseDateTimeLocal(fl.Field().String(), time.UTC)
	return err == nil
}

func validateNoWhitespace(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), " \t\r\n")
}
