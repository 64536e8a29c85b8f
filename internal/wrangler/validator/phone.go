package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/winthrop-intelligence/phone-wrangler/pkg/logger"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/phone"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type PhoneValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewPhoneValidator(log *logger.Logger) *PhoneValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	tags := map[string]func(string) bool{
		"nanp_area_code":  phone.ValidAreaCode,
		"nanp_exchange":   phone.ValidExchange,
		"line_number":     phone.ValidLineNumber,
		"phone_extension": phone.ValidExtension,
	}
	for tag, check := range tags {
		if err := v.RegisterValidation(tag, stringCheck(check)); err != nil {
			log.Fatal("Failed to register validator", "tag", tag, "error", err)
		}
	}

	log.Debug("Phone validator initialized successfully")

	return &PhoneValidator{
		validate: v,
		logger:   log,
	}
}

func stringCheck(check func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return check(fl.Field().String())
	}
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Validate checks a request struct and returns ValidationErrors describing
// every failing field.
func (v *PhoneValidator) Validate(req any) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must have at least %s elements", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s long", err.Field(), err.Param())
		case "len=0|nanp_area_code", "nanp_area_code":
			message = "area_code must be three digits, not starting with 0 or 1 and without 9 in the middle"
		case "len=0|nanp_exchange":
			message = "prefix must be three digits, not starting with 0 or 1"
		case "len=0|line_number":
			message = "number must be exactly four digits"
		case "len=0|phone_extension":
			message = "extension must contain digits only"
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
