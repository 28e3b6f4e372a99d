package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validationDetail flattens a request binding failure into a field-level
// message for the 422 body. Non-validator errors (malformed JSON, wrong
// types) pass through as-is.
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s is required", fe.Field()))
		case "payment_type":
			details = append(details, fmt.Sprintf("%s must be one of: cash, online", fe.Field()))
		case "gte":
			details = append(details, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		default:
			details = append(details, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(details, "; ")
}
