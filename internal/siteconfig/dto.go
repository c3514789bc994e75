package siteconfig

import (
	errors "github.com/homeledger/homeledger/internal"
	"github.com/homeledger/homeledger/internal/core/common/validation"
)

// UpdateConfigDTO is a batch of key→value updates. Unknown keys are rejected;
// labels are created through seeding, not through this endpoint.
type UpdateConfigDTO struct {
	Values map[string]string `json:"values"`
}

func (dto UpdateConfigDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("values", "").Custom(func(interface{}) *errors.AppError {
		if len(dto.Values) == 0 {
			return errors.NewValidationFieldError("values",
				"values must contain at least one key",
				errors.ErrCodeValidationFailed)
		}
		for key, value := range dto.Values {
			if key == "" {
				return errors.NewValidationFieldError("values",
					"config keys must not be empty",
					errors.ErrCodeValidationFailed)
			}
			if len(value) > 500 {
				return errors.NewValidationFieldError(key,
					"config values must not exceed 500 characters",
					errors.ErrCodeValidationFailed)
			}
		}
		return nil
	})
	return v.Validate()
}
