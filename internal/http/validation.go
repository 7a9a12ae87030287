package httpapi

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/foodie/internal/domain"
)

var (
	validationsOnce sync.Once
	validationsErr  error
)

// registerValidations adds the enum tags used in request binding tags to gin's
// validator. It runs once per process.
func registerValidations() error {
	validationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validationsErr = errors.New("binding validator is not validator/v10")
			return
		}

		validationsErr = errors.Join(
			v.RegisterValidation("product_status", enumValidation(domain.ToProductStatus)),
			v.RegisterValidation("product_location", enumValidation(domain.ToProductLocation)),
			v.RegisterValidation("product_outcome", enumValidation(domain.ToProductOutcome)),
		)
	})

	return validationsErr
}

func enumValidation[T any](parse func(string) (T, error)) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := parse(fl.Field().String())
		return err == nil
	}
}
