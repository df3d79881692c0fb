package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	isbn13Re = regexp.MustCompile(`^[0-9]{13}$`)
	ssnRe    = regexp.MustCompile(`^[0-9]{3}-[0-9]{2}-[0-9]{4}$`)
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("isbn13", func(fl validator.FieldLevel) bool {
		return isbn13Re.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("ssn", func(fl validator.FieldLevel) bool {
		return ssnRe.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
