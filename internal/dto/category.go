package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidCategory is returned when a CategoryDTO fails validation.
var ErrInvalidCategory = errors.New("invalid category")

var validate = validator.New(validator.WithRequiredStructEnabled())

// CategoryDTO is the input shape for creating and updating categories.
// A nil Description means the caller did not provide one.
type CategoryDTO struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// DescriptionOrEmpty returns the description, or "" when it was not provided.
func (d CategoryDTO) DescriptionOrEmpty() string {
	if d.Description == nil {
		return ""
	}
	return *d.Description
}

func (d CategoryDTO) Validate() error {
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed on %q", ErrInvalidCategory, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidCategory, err)
	}
	return nil
}
