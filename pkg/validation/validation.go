// Package validation registers the custom binding rules on gin's validator.
package validation

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const TagNotBlank = "notblank"

var (
	ErrUnexpectedEngine = errors.New("validation: gin validator engine is not go-playground/validator")

	once    sync.Once
	onceErr error
)

// Register adds the custom rules to gin's default validator. Safe to call more than once.
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			onceErr = ErrUnexpectedEngine
			return
		}
		onceErr = v.RegisterValidation(TagNotBlank, validators.NotBlank)
	})
	return onceErr
}
