// Package validator checks user input against its validate struct tags.
package validator

import (
	"reflect"
	"strings"

	domainerrors "wozmarket/internal/domain/errors"
	"wozmarket/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator and reports failures as ErrValidationFailed.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that names fields by their json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate checks i; the returned error lists every failed field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate input")
	}

	failed := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed = append(failed, fe.Field()+" failed "+fe.Tag())
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(strings.Join(failed, "; ")))
}
