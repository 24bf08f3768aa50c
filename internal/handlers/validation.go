package handlers

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/gymmanagement/gym/internal/services"
)

var (
	validate   *validator.Validate
	translator ut.Translator

	passwordTag  = "password"
	passwordText = "{0} must be at least 6 characters and contain a letter and a digit"
)

func init() {
	validate = validator.New()

	english := en.New()
	uni := ut.New(english, english)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// report JSON field names rather than Go struct names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(passwordTag, passwordValidation)
	registerTranslation(passwordTag, passwordText)
}

func registerTranslation(tag, text string) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

func passwordValidation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) < 6 {
		return false
	}
	var letter, digit bool
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}

// validateStruct returns the first failing field as a VALIDATION_ERROR.
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return services.Validation("%s", fieldErrs[0].Translate(translator))
	}
	return services.Validation("%s", err.Error())
}

// bindJSON parses the request body into v and validates it.
func bindJSON(c *fiber.Ctx, v interface{}) error {
	if err := c.BodyParser(v); err != nil {
		return services.Validation("invalid request body")
	}
	return validateStruct(v)
}
