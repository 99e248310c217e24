package utils

import (
	"errors"
	"reflect"
	"strings"

	"planousoapi/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Error details carry the wire-level field names, not Go identifiers.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct runs the shared validator over a tagged struct.
func ValidateStruct(obj interface{}) error {
	return validate.Struct(obj)
}

// ValidationDetails flattens a validator error into per-field details.
// Non-validator errors collapse into a single body-level entry.
func ValidationDetails(err error) []apperr.FieldDetail {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []apperr.FieldDetail{{Field: "body", Message: err.Error()}}
	}
	details := make([]apperr.FieldDetail, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		if ns := fe.Namespace(); strings.Contains(ns, ".") {
			// Drop the root struct name, keep the nested path.
			field = ns[strings.Index(ns, ".")+1:]
		}
		message := "inválido"
		if fe.Tag() == "required" {
			message = "obrigatório"
		}
		details = append(details, apperr.FieldDetail{Field: field, Message: message})
	}
	return details
}
