package validators

import (
	"fmt"

	"restrohub/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("cuisine", validateCuisine)
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// ValidateStruct runs the tag-based rules and flattens the result.
func ValidateStruct(s interface{}) ValidationErrors {
	var errors ValidationErrors

	err := validate.Struct(s)
	if err == nil {
		return errors
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "", Message: err.Error()}}
	}

	for _, fieldErr := range validationErrs {
		errors = append(errors, ValidationError{
			Field:   fieldErr.Field(),
			Message: messageForTag(fieldErr),
		})
	}

	return errors
}

func messageForTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	case "cuisine":
		return fmt.Sprintf("'%v' is not a valid cuisine", fieldErr.Value())
	default:
		return fmt.Sprintf("failed '%s' validation", fieldErr.Tag())
	}
}

func validateCuisine(fl validator.FieldLevel) bool {
	return models.Cuisine(fl.Field().String()).IsValid()
}
