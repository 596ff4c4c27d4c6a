package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/saiydurnetcom/nexuspm/errors"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	return &CustomValidator{v: v}
}

// Validate performs struct validation and converts failures into AppError
// so handlers can surface them with a 400 and a field-level message.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.v.Struct(i); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
			ve := ves[0]
			return apperrors.ErrValidation(
				fmt.Sprintf("field %s failed on the %s rule", ve.Field(), ve.Tag()),
			)
		}
		return err
	}
	return nil
}
