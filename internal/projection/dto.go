package projection

import (
	errors "github.com/homeledger/homeledger/internal"
	"github.com/homeledger/homeledger/internal/core/common/validation"
)

// UpsertOverrideDTO is the request payload for setting a month override. Year
// and month come from the URL path.
type UpsertOverrideDTO struct {
	IncomeCents  int64   `json:"income_cents"`
	ExpenseCents int64   `json:"expense_cents"`
	Note         *string `json:"note,omitempty"`
}

func (dto UpsertOverrideDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("income_cents", dto.IncomeCents).NonNegative(errors.ErrCodeInvalidAmount)
	v.Field("expense_cents", dto.ExpenseCents).NonNegative(errors.ErrCodeInvalidAmount)
	if dto.Note != nil {
		v.Field("note", *dto.Note).MaxLength(500)
	}
	return v.Validate()
}

// ProjectionResponse is the wire shape of a computed projection.
type ProjectionResponse struct {
	Months   []MonthTotal `json:"months"`
	Warnings []Warning    `json:"warnings,omitempty"`
}

// SummaryResponse backs the dashboard cards: the overall standing totals
// rather than a per-month breakdown.
type SummaryResponse struct {
	IncomeCents         int64 `json:"income_cents"`
	FixedCents          int64 `json:"fixed_cents"`
	PendingDebtCents    int64 `json:"pending_debt_cents"`
	UpcomingOneOffs     int64 `json:"upcoming_one_off_cents"`
	MonthlyBalance      int64 `json:"monthly_balance_cents"`
	PendingInstallments int   `json:"pending_installments"`
}
