// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"prepmap/internal/errors"
	"prepmap/internal/mapcore/region"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the region id rule registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("regionid", isRegionID)

	return &Validator{validate: v}
}

// Validate checks struct tags and returns a readable error.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Field()+" failed on "+fe.Tag())
	}

	return errors.New(strings.Join(msgs, "; "))
}

// isRegionID applies the identity table's region id rule.
func isRegionID(fl validator.FieldLevel) bool {
	return region.ValidID(fl.Field().String())
}
