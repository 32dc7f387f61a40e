package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// firstInvalidField names the first struct field that failed validation,
// letting handlers pick a field-specific message.
func firstInvalidField(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field()
	}
	return ""
}
