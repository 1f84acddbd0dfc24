package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var attributeTypePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// newValidator returns a validator that reports JSON field names and knows the
// attribute_type tag (an upper-case name such as COST_CENTER).
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("attribute_type", func(fl validator.FieldLevel) bool {
		return attributeTypePattern.MatchString(fl.Field().String())
	})
	return v
}

// addValidationErrors records every failed rule of err against the item at index.
func addValidationErrors(bulk *apperrors.BulkError, index int, err error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		bulk.AddError(index, err)
		return
	}
	for _, fe := range fieldErrs {
		bulk.Add(index, fe.Field(), valueString(fe.Value()), ruleMessage(fe))
	}
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "attribute_type":
		return "must be an upper-case attribute type such as COST_CENTER"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func valueString(v any) string {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return ""
	}
	if rv.Kind() == reflect.Pointer {
		v = rv.Elem().Interface()
	}
	return fmt.Sprint(v)
}
