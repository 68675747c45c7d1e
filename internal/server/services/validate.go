package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/foundrmate/internal/common"
	"github.com/dmitrijs2005/foundrmate/internal/server/auth"
)

var emailPattern = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

// registration is validated as a whole so every violated rule is reported.
// Fields are checked in declaration order.
type registration struct {
	FullName string `validate:"min=2,max=50"`
	Email    string `validate:"legacyemail"`
	Password string `validate:"min=6,bcryptlen"`
}

// fieldMessages maps field and failed tag to the message shown to callers.
var fieldMessages = map[string]map[string]string{
	"FullName": {
		"min": "Name must be at least 2 characters",
		"max": "Name must be less than 50 characters",
	},
	"Email": {
		"legacyemail": "Please enter a valid email address",
	},
	"Password": {
		"min":       "Password must be at least 6 characters",
		"bcryptlen": "Password must be at most 72 bytes",
	},
}

var registrationValidator = newRegistrationValidator()

func newRegistrationValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("legacyemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= auth.MaxPasswordBytes
	}); err != nil {
		panic(err)
	}
	return v
}

// validateRegistration returns a validation error listing every violated
// rule joined with ", ", or nil. Name and email are expected to be trimmed.
func validateRegistration(fullName, email, password string) error {
	err := registrationValidator.Struct(registration{FullName: fullName, Email: email, Password: password})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return common.Internal(err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := fieldMessages[fe.Field()][fe.Tag()]
		if !ok {
			return common.Internal(fe)
		}
		problems = append(problems, msg)
	}
	return common.Validation(strings.Join(problems, ", "))
}
