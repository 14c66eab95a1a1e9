// Package validator checks service inputs and reports failures as
// field-attached messages.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"taxdesk/internal/domain"
)

// Validator wraps a go-playground validator with the identifier tags
// pan, gstin, tan and phone_in registered.
type Validator struct {
	v *playground.Validate
}

// New returns a Validator ready for use.
func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Amounts are compared numerically by gte/lte.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	stringRule := func(fn func(string) bool) playground.Func {
		return func(fl playground.FieldLevel) bool {
			return fn(fl.Field().String())
		}
	}
	_ = v.RegisterValidation("pan", stringRule(IsPAN))
	_ = v.RegisterValidation("gstin", stringRule(IsGSTIN))
	_ = v.RegisterValidation("tan", stringRule(IsTAN))
	_ = v.RegisterValidation("phone_in", stringRule(IsPhone))
	_ = v.RegisterValidation("year_range", stringRule(IsYearRange))

	return &Validator{v: v}
}

// Struct validates s. It returns nil or a *domain.ValidationError.
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validator.Struct: %w", err)
	}
	out := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), message(fe))
	}
	return out
}

func message(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "pan":
		return "PAN format is invalid (e.g. ABCDE1234F)"
	case "gstin":
		return "GSTIN format is invalid"
	case "tan":
		return "TAN must be exactly 10 characters"
	case "phone_in":
		return "enter a valid 10-digit phone number"
	case "year_range":
		return "must be a year range such as 2024-2025"
	case "numeric":
		return "must contain digits only"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), "'", "")
	case "datetime":
		if fe.Param() == domain.MonthLayout {
			return "must be a month in YYYY-MM format"
		}
		return "must be a date in YYYY-MM-DD format"
	case "dive":
		return "contains an invalid entry"
	default:
		return "is invalid"
	}
}
