// Package inputval validates form input structs with go-playground/validator.
//
// Input structs carry `validate` rules and a `label` used in messages:
//
//	type studentInput struct {
//		Name  string `validate:"required,max=100" label:"Name"`
//		Email string `validate:"required,email" label:"Email"`
//	}
package inputval

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/dalemusser/eduadmin/internal/domain/models"
	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if l := f.Tag.Get("label"); l != "" {
				return l
			}
			return f.Name
		})
		_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
			_, err := models.ParseGender(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := models.ParseDate(fl.Field().String())
			return err == nil
		})
		// wholenumber: digits only, fits the backend's 32-bit integer.
		_ = v.RegisterValidation("wholenumber", func(fl validator.FieldLevel) bool {
			n, err := strconv.ParseInt(fl.Field().String(), 10, 32)
			return err == nil && n >= 0
		})
	})
	return v
}

// FieldError is one failed rule on one field.
type FieldError struct {
	Field   string
	Message string
}

// Result holds the outcome of Validate.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first error message, or "".
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every error message with a space.
func (r Result) All() string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, " ")
}

// Validate runs the struct's validate rules. Strings are checked as given;
// callers trim form values first.
func Validate(input any) Result {
	err := instance().Struct(input)
	if err == nil {
		return Result{}
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result{Errors: []FieldError{{Message: err.Error()}}}
	}
	out := Result{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{Field: fe.StructField(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "email":
		return label + " must be a valid email address."
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	case "gender":
		return label + " must be Male, Female or Other."
	case "isodate":
		return label + " must be a date (YYYY-MM-DD)."
	case "wholenumber":
		return fmt.Sprintf("%s must be a whole number from 0 to %d.", label, math.MaxInt32)
	case "numeric":
		return label + " must be a number."
	default:
		return label + " is invalid."
	}
}
