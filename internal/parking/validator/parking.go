package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"parkwise/pkg/logger"

	"github.com/go-playground/validator/v10"
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

// Fields maps each failing field to its message, for error details.
func (v ValidationErrors) Fields() map[string]any {
	fields := make(map[string]any, len(v))
	for _, err := range v {
		fields[err.Field] = err.Message
	}
	return fields
}

type ParkingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewParkingValidator(log *logger.Logger) *ParkingValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("plate", validatePlate); err != nil {
		log.Fatal("Failed to register 'plate' validator",
			"error", err,
		)
	}

	log.Debug("Parking validator initialized successfully")

	return &ParkingValidator{
		validate: v,
		logger:   log,
	}
}

// validatePlate accepts any plate made of printable runes. Plates are not
// restricted to ASCII; "ÖL 123" and "京A12345" are both valid.
func validatePlate(fl validator.FieldLevel) bool {
	plate := fl.Field().String()
	if plate == "" {
		return false
	}
	for _, r := range plate {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// Validate checks any request or record struct against its validate tags.
func (v *ParkingValidator) Validate(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *ParkingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "plate":
			message = fmt.Sprintf("%s must contain only printable characters", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
