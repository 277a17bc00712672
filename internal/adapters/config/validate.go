package config

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/zerr"

	"go.trai.ch/cssinjs/internal/core/domain"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	cssKeyPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("csskey", func(fl validator.FieldLevel) bool {
			return cssKeyPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func validateStylefile(sf *Stylefile) error {
	if err := validatorInstance().Struct(sf); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError reports the first failed field of err.
func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !asValidationErrors(err, &ves) || len(ves) == 0 {
		return zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}
	fe := ves[0]
	wrapped := zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	wrapped = zerr.With(wrapped, "field", fieldName(fe))
	return zerr.With(wrapped, "rule", fe.Tag())
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ves, ok := err.(validator.ValidationErrors) //nolint:errorlint // validator returns the concrete type
	if ok {
		*target = ves
	}
	return ok
}

func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}
