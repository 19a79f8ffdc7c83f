package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError: клиент прислал неполные данные, отвечаем 400.
type ValidationError struct {
	Message string
	Details string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (missing: %s)", e.Message, strings.Join(e.Fields, ", "))
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check runs the struct tags of a trimmed request and maps failures to a
// ValidationError carrying the endpoint's message.
func Check(req any, message, details string) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate request: %w", err)
	}
	ve := &ValidationError{Message: message, Details: details}
	for _, fe := range fieldErrs {
		ve.Fields = append(ve.Fields, fe.Field())
	}
	return ve
}

const (
	MsgRegisterMissing     = "Missing required fields: fullName and phone are required"
	DetailsRegisterMissing = "Please provide at least a name and phone number for registration"

	MsgCheckMissing = "Phone number is required"

	MsgFeedbackMissing     = "Missing required fields: clientName and feedback are required"
	DetailsFeedbackMissing = "Please provide your name and the feedback you want to share"

	MsgOrderMissing     = "Missing required fields: clientName, teaType and sugarPercentage are required"
	DetailsOrderMissing = "Please provide your name, the tea you want and a sugar percentage"
)
