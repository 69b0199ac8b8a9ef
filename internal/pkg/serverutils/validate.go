package serverutils

import (
	"fmt"
	"strings"

	"collegeplan-be/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and converts failures into a
// single ValidationError with a readable field list.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidation(err.Error())
	}

	var problems []string
	for _, fieldErr := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
	}
	return apperrors.NewValidation(strings.Join(problems, "; "))
}
