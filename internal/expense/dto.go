package expense

import (
	"fmt"
	"time"

	errors "github.com/homeledger/homeledger/internal"
	"github.com/homeledger/homeledger/internal/core/common/validation"
)

// CreateExpenseDTO is the request payload for creating an expense. Fields
// beyond the common set are kind-specific: installment expenses need a count
// and a first due date, one-off expenses need a due date.
type CreateExpenseDTO struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	AmountCents int64   `json:"amount_cents"`
	Kind        string  `json:"kind"`
	PaidBy      string  `json:"paid_by"`
	Notes       *string `json:"notes,omitempty"`

	// Installment kind only.
	TotalInstallments *int       `json:"total_installments,omitempty"`
	FirstDueDate      *time.Time `json:"first_due_date,omitempty"`
	PaidInstallments  int        `json:"paid_installments,omitempty"`

	// One-off kind only.
	DueDate *time.Time `json:"due_date,omitempty"`
}

func (dto CreateExpenseDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(200)
	v.Field("category", dto.Category).Required().MaxLength(100)
	v.Field("amount_cents", dto.AmountCents).NonNegative(errors.ErrCodeInvalidAmount)
	v.Field("paid_by", dto.PaidBy).Required().PersonTag()
	v.Field("kind", dto.Kind).Required().Custom(func(value interface{}) *errors.AppError {
		if s, ok := value.(string); ok && s != "" && !Kind(s).Valid() {
			return errors.NewValidationFieldError("kind",
				fmt.Sprintf("kind must be one of %q, %q or %q", KindFixed, KindInstallment, KindOneOff),
				errors.ErrCodeInvalidKind)
		}
		return nil
	})

	switch Kind(dto.Kind) {
	case KindInstallment:
		v.Field("total_installments", dto.TotalInstallments).Custom(func(interface{}) *errors.AppError {
			if dto.TotalInstallments == nil || *dto.TotalInstallments < 1 {
				return errors.NewValidationFieldError("total_installments",
					"total_installments must be at least 1 for installment expenses",
					errors.ErrCodeInvalidInstallmentCount)
			}
			if dto.PaidInstallments < 0 || dto.PaidInstallments > *dto.TotalInstallments {
				return errors.NewValidationFieldError("paid_installments",
					"paid_installments must be between 0 and total_installments",
					errors.ErrCodeInvalidPaidCount)
			}
			return nil
		})
		v.Field("first_due_date", dto.FirstDueDate).Required()
	case KindOneOff:
		v.Field("due_date", dto.DueDate).Required()
	}

	return v.Validate()
}

// UpdateExpenseDTO carries a partial update of the common fields. Kind,
// installment count and due dates are immutable after creation; to change
// them, delete the expense and recreate it.
type UpdateExpenseDTO struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty"`
	AmountCents *int64  `json:"amount_cents,omitempty"`
	PaidBy      *string `json:"paid_by,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (dto UpdateExpenseDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if dto.Name != nil {
		v.Field("name", *dto.Name).Required().MaxLength(200)
	}
	if dto.Category != nil {
		v.Field("category", *dto.Category).Required().MaxLength(100)
	}
	if dto.AmountCents != nil {
		v.Field("amount_cents", *dto.AmountCents).NonNegative(errors.ErrCodeInvalidAmount)
	}
	if dto.PaidBy != nil {
		v.Field("paid_by", *dto.PaidBy).Required().PersonTag()
	}
	return v.Validate()
}

// UpdateInstallmentStatusDTO flips a single installment between pending and
// paid.
type UpdateInstallmentStatusDTO struct {
	Status string `json:"status"`
}

func (dto UpdateInstallmentStatusDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("status", dto.Status).Required().Custom(func(value interface{}) *errors.AppError {
		if s, ok := value.(string); ok && s != "" && s != StatusPending && s != StatusPaid {
			return errors.NewValidationFieldError("status",
				fmt.Sprintf("status must be %q or %q", StatusPending, StatusPaid),
				errors.ErrCodeValidationFailed)
		}
		return nil
	})
	return v.Validate()
}
