package serverutils

import (
	"errors"
	"reflect"
	"strings"

	"sample-be/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRequest runs the validate tags of req. Violations come back as one
// ValidationFailure listing every field.
func ValidateRequest(entityName string, req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fieldErrors := make([]apperror.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			ObjectName: entityName,
			Field:      fieldPath(fe),
			Message:    messageFor(fe),
		})
	}
	return apperror.InvalidFields(entityName, fieldErrors)
}

// fieldPath drops the root struct name: "ChildEntityDTO.owner.id" -> "owner.id".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be null"
	case "min":
		return "size must be at least " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}
