// Package projection computes the household cash-flow outlook: per-month
// income, expense and balance totals derived from the current income entries
// and the expense book, with manual per-month overrides layered on top.
package projection

import (
	"time"

	projectionDatamodel "github.com/homeledger/homeledger/internal/core/datamodel/projection"
	"github.com/homeledger/homeledger/internal/core/money"
	"github.com/homeledger/homeledger/internal/core/person"
	"github.com/homeledger/homeledger/internal/expense"
	"github.com/homeledger/homeledger/internal/income"
)

// Snapshot is the input the engine aggregates over: every income entry and
// every expense (with its installments) as they stand right now.
type Snapshot struct {
	Incomes  []*income.IncomeEntry
	Expenses []*expense.Expense
}

// Filter narrows a computed view. Person applies to incomes and expenses;
// Category applies to expenses only, since income entries carry person tags
// rather than categories. A zero Filter means the unfiltered household view.
type Filter struct {
	Person   person.Tag
	Category string
}

func (f Filter) IsZero() bool {
	return f.Person == "" && f.Category == ""
}

// MonthTotal is one month of the projection. Overridden reports whether a
// manual override replaced the computed figures.
type MonthTotal struct {
	Year         int         `json:"year"`
	Month        int         `json:"month"`
	IncomeCents  money.Cents `json:"income_cents"`
	ExpenseCents money.Cents `json:"expense_cents"`
	BalanceCents money.Cents `json:"balance_cents"`
	Overridden   bool        `json:"overridden"`
}

// Warning reports a record the engine had to skip, so a malformed row
// degrades the projection instead of failing it.
type Warning struct {
	RecordID string `json:"record_id"`
	Reason   string `json:"reason"`
}

// Override replaces the computed totals of one calendar month.
type Override struct {
	ID           string      `json:"id"`
	Year         int         `json:"year"`
	Month        int         `json:"month"`
	IncomeCents  money.Cents `json:"income_cents"`
	ExpenseCents money.Cents `json:"expense_cents"`
	Note         *string     `json:"note,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func OverrideToDataModel(o *Override) *projectionDatamodel.Override {
	return &projectionDatamodel.Override{
		ID:           o.ID,
		Year:         o.Year,
		Month:        o.Month,
		IncomeCents:  int64(o.IncomeCents),
		ExpenseCents: int64(o.ExpenseCents),
		Note:         o.Note,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func OverrideFromDataModel(o *projectionDatamodel.Override) *Override {
	return &Override{
		ID:           o.ID,
		Year:         o.Year,
		Month:        o.Month,
		IncomeCents:  money.Cents(o.IncomeCents),
		ExpenseCents: money.Cents(o.ExpenseCents),
		Note:         o.Note,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func OverrideFromDataModelSlice(overrides []*projectionDatamodel.Override) []*Override {
	result := make([]*Override, len(overrides))
	for i, o := range overrides {
		result[i] = OverrideFromDataModel(o)
	}
	return result
}
