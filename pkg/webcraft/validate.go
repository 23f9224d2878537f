package webcraft

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validateRequest checks the `validate` struct tags of a request record
func validateRequest(req interface{}) error {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	if err := validate.Struct(req); err != nil {
		return invalidRequest(err)
	}
	return nil
}
