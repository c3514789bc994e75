package income

import (
	errors "github.com/homeledger/homeledger/internal"
	"github.com/homeledger/homeledger/internal/core/common/validation"
)

// CreateIncomeDTO is the request payload for creating an income entry.
type CreateIncomeDTO struct {
	Person      string `json:"person"`
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
}

func (dto CreateIncomeDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("person", dto.Person).Required().PersonTag()
	v.Field("name", dto.Name).Required().MaxLength(200)
	v.Field("amount_cents", dto.AmountCents).NonNegative(errors.ErrCodeInvalidAmount)
	return v.Validate()
}

// UpdateIncomeDTO carries a partial update; nil fields are left unchanged.
type UpdateIncomeDTO struct {
	Person      *string `json:"person,omitempty"`
	Name        *string `json:"name,omitempty"`
	AmountCents *int64  `json:"amount_cents,omitempty"`
}

func (dto UpdateIncomeDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if dto.Person != nil {
		v.Field("person", *dto.Person).Required().PersonTag()
	}
	if dto.Name != nil {
		v.Field("name", *dto.Name).Required().MaxLength(200)
	}
	if dto.AmountCents != nil {
		v.Field("amount_cents", *dto.AmountCents).NonNegative(errors.ErrCodeInvalidAmount)
	}
	return v.Validate()
}
