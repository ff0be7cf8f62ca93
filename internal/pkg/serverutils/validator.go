package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"pocket-pm-be/internal/pkg/apperrors"
)

var validate = validator.New()

// ValidateRequest checks a DTO against its `validate` tags and converts
// failures into a field-level ValidationError.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return apperrors.NewValidation("invalid request payload")
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s: failed %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
		return apperrors.NewValidation("request validation failed", fields...)
	}

	return apperrors.NewValidation(err.Error())
}

// ValidateStruct is ValidateRequest for values validated outside a request
// body, e.g. generated drafts checked row by row.
func ValidateStruct(v interface{}) error {
	return ValidateRequest(v)
}
