package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/wsei-dev/university-records/pkg/util"
)

var validate = newValidator()

// newValidator reports field names by their json tag so error details match
// the wire format.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Check validates a request DTO against its struct tags and converts
// failures into a field-keyed validation error.
func Check(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	details := make(map[string]any, len(verrs))
	for _, e := range verrs {
		details[e.Field()] = e.Tag()
	}
	return apperrors.NewValidationError("validation failed", details)
}
