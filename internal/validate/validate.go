// Package validate runs struct tag validation on service inputs and reports
// failures as domain validation errors.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

var v *validator.Validate

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so errors match request bodies.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", notBlank)
}

// notBlank rejects strings that are empty after trimming. Nil pointers pass;
// combine with required when the field is mandatory.
func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(f.String()) != ""
}

// Struct validates s against its validate tags. It returns nil or a
// *domain.ValidationError listing every failing field.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}
	return domain.NewValidationErrors(fields)
}

// StructWith validates s and appends extra field errors found by the
// caller's own checks.
func StructWith(s any, extra []domain.FieldError) error {
	err := Struct(s)
	if err == nil {
		if len(extra) == 0 {
			return nil
		}
		return domain.NewValidationErrors(extra)
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return domain.NewValidationErrors(append(ve.Errors, extra...))
	}
	return err
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("too long (max %s)", fe.Param())
		}
		return "must be <= " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("too short (min %s)", fe.Param())
		}
		return "must be >= " + fe.Param()
	case "gt":
		return "must be > " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "invalid email"
	case "url":
		return "invalid url"
	case "hostname_rfc1123", "ip", "hostname|ip":
		return "invalid host"
	case "len":
		return "must have length " + fe.Param()
	case "uppercase":
		return "must be uppercase"
	}
	return "invalid value (" + fe.Tag() + ")"
}
