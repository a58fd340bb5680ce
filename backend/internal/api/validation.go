package api

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"synonym-search/backend/internal/synonym"
	apperrors "synonym-search/backend/pkg/errors"
)

var registerOnce sync.Once

// registerValidators adds the custom tags used by request bodies to gin's
// validator engine
func registerValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
				return !synonym.IsBlank(fl.Field().String())
			})
		}
	})
}

// bindingError converts a request binding failure into a validation error.
// Field failures on the word or synonyms map onto the matching reason; any
// other failure (malformed JSON, wrong types) is reported as-is.
func bindingError(err error) (*apperrors.ValidationError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return nil, false
	}

	e := verrs[0]
	reason := apperrors.ReasonInvalidSynonymList
	if e.StructField() == "Word" {
		reason = apperrors.ReasonInvalidWord
	}
	return apperrors.NewValidationError(reason, formatFieldError(e)), true
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, e.Param())
	case "notblank":
		return fmt.Sprintf("%s cannot be empty or whitespace", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
