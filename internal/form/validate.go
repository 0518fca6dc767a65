package form

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Reuse the binding tags so the same schema drives both the client-side
	// validator and the server-side request binding.
	v.SetTagName("binding")

	v.RegisterValidation("email", validateEmail)

	return v
}

// validateEmail checks if the email is valid
func validateEmail(fl validator.FieldLevel) bool {
	email := fl.Field().String()
	return emailRegex.MatchString(email)
}

// Validate sanitizes the raw input and checks it against the schema. It
// returns the sanitized payload together with nil on success, or a non-empty
// Errors map when any rule fails.
func Validate(in Input) (Input, Errors) {
	clean := Sanitize(in)

	if err := validate.Struct(clean); err != nil {
		return clean, FormatErrors(err)
	}

	return clean, nil
}

// ValidateField checks a single field of the input, for callers that
// revalidate on blur or change. It returns the error message for the field
// and whether the field is valid.
func ValidateField(in Input, field string) (string, bool) {
	_, errs := Validate(in)
	if msg, ok := errs[field]; ok {
		return msg, false
	}
	return "", true
}

// FormatErrors converts validator errors into a field→message map
func FormatErrors(err error) Errors {
	formErrors := Errors{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		formErrors["form"] = "Invalid form data."
		return formErrors
	}

	for _, e := range validationErrors {
		// Field() is the struct field name, lowercased here to match the
		// JSON payload names used as Errors keys.
		field := strings.ToLower(e.Field())

		// Keep the first failing rule per field
		if _, ok := formErrors[field]; !ok {
			formErrors[field] = fieldMessage(field, e.Tag())
		}
	}

	return formErrors
}

func fieldMessage(field, tag string) string {
	switch field {
	case FieldName:
		if tag == "max" {
			return "Name must be at most 100 characters."
		}
		return "Name must be at least 3 characters long."
	case FieldEmail:
		if tag == "max" {
			return "Email must be at most 255 characters."
		}
		return "Please enter a valid email address."
	case FieldMessage:
		if tag == "max" {
			return "Message must be at most 1000 characters."
		}
		return "Message must be at least 10 characters long."
	default:
		return "Invalid value."
	}
}
