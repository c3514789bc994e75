package expense

import (
	"time"

	"github.com/google/uuid"

	expenseDatamodel "github.com/homeledger/homeledger/internal/core/datamodel/expense"
	"github.com/homeledger/homeledger/internal/core/money"
	"github.com/homeledger/homeledger/internal/core/person"
)

// Kind discriminates how an expense hits the monthly totals: fixed charges
// count every month, installment purchases count through their pending
// installments, one-off charges count only in their due month.
type Kind string

const (
	KindFixed       Kind = "fixed"
	KindInstallment Kind = "installment"
	KindOneOff      Kind = "one_off"
)

func (k Kind) Valid() bool {
	switch k {
	case KindFixed, KindInstallment, KindOneOff:
		return true
	}
	return false
}

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

type Expense struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Category          string        `json:"category"`
	Amount            money.Cents   `json:"amount_cents"`
	Kind              Kind          `json:"kind"`
	PaidBy            person.Tag    `json:"paid_by"`
	Notes             *string       `json:"notes,omitempty"`
	TotalInstallments *int          `json:"total_installments,omitempty"`
	FirstDueDate      *time.Time    `json:"first_due_date,omitempty"`
	DueDate           *time.Time    `json:"due_date,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	Installments      []Installment `json:"installments,omitempty"`
}

// Installment is one dated slice of an installment-kind expense.
type Installment struct {
	ID                string      `json:"id"`
	ExpenseID         string      `json:"expense_id"`
	InstallmentNumber int         `json:"installment_number"`
	Amount            money.Cents `json:"amount_cents"`
	DueDate           time.Time   `json:"due_date"`
	Status            string      `json:"status"`
	PaidAt            *time.Time  `json:"paid_at,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

func (i *Installment) IsPaid() bool {
	return i.Status == StatusPaid
}

// MarkPaid transitions the installment to paid at the given time. Marking an
// already paid installment refreshes the paid timestamp.
func (i *Installment) MarkPaid(at time.Time) {
	i.Status = StatusPaid
	i.PaidAt = &at
	i.UpdatedAt = at
}

// MarkPending reverts the installment to pending and clears the paid
// timestamp, so a paid one always carries it and a pending one never does.
func (i *Installment) MarkPending(at time.Time) {
	i.Status = StatusPending
	i.PaidAt = nil
	i.UpdatedAt = at
}

func NewExpense(dto CreateExpenseDTO) *Expense {
	now := time.Now()
	exp := &Expense{
		ID:        uuid.NewString(),
		Name:      dto.Name,
		Category:  dto.Category,
		Amount:    money.Cents(dto.AmountCents),
		Kind:      Kind(dto.Kind),
		PaidBy:    person.Tag(dto.PaidBy),
		Notes:     dto.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch exp.Kind {
	case KindInstallment:
		exp.TotalInstallments = dto.TotalInstallments
		exp.FirstDueDate = dto.FirstDueDate
	case KindOneOff:
		exp.DueDate = dto.DueDate
	}

	return exp
}

func ToDataModel(e *Expense) *expenseDatamodel.Expense {
	dm := &expenseDatamodel.Expense{
		ID:                e.ID,
		Name:              e.Name,
		Category:          e.Category,
		AmountCents:       int64(e.Amount),
		Kind:              string(e.Kind),
		PaidBy:            string(e.PaidBy),
		Notes:             e.Notes,
		TotalInstallments: e.TotalInstallments,
		FirstDueDate:      e.FirstDueDate,
		DueDate:           e.DueDate,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
	for _, inst := range e.Installments {
		dm.Installments = append(dm.Installments, *InstallmentToDataModel(&inst))
	}
	return dm
}

func FromDataModel(e *expenseDatamodel.Expense) *Expense {
	exp := &Expense{
		ID:                e.ID,
		Name:              e.Name,
		Category:          e.Category,
		Amount:            money.Cents(e.AmountCents),
		Kind:              Kind(e.Kind),
		PaidBy:            person.Tag(e.PaidBy),
		Notes:             e.Notes,
		TotalInstallments: e.TotalInstallments,
		FirstDueDate:      e.FirstDueDate,
		DueDate:           e.DueDate,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
	for i := range e.Installments {
		exp.Installments = append(exp.Installments, *InstallmentFromDataModel(&e.Installments[i]))
	}
	return exp
}

func FromDataModelSlice(expenses []*expenseDatamodel.Expense) []*Expense {
	result := make([]*Expense, len(expenses))
	for i, e := range expenses {
		result[i] = FromDataModel(e)
	}
	return result
}

func InstallmentToDataModel(i *Installment) *expenseDatamodel.Installment {
	return &expenseDatamodel.Installment{
		ID:                i.ID,
		ExpenseID:         i.ExpenseID,
		InstallmentNumber: i.InstallmentNumber,
		AmountCents:       int64(i.Amount),
		DueDate:           i.DueDate,
		Status:            i.Status,
		PaidAt:            i.PaidAt,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}

func InstallmentFromDataModel(i *expenseDatamodel.Installment) *Installment {
	return &Installment{
		ID:                i.ID,
		ExpenseID:         i.ExpenseID,
		InstallmentNumber: i.InstallmentNumber,
		Amount:            money.Cents(i.AmountCents),
		DueDate:           i.DueDate,
		Status:            i.Status,
		PaidAt:            i.PaidAt,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}
