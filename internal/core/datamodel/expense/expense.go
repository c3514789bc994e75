package expense

import "time"

// Expense is the persistence shape of an expense of any kind. Installment
// children are loaded via the Installments association.
type Expense struct {
	ID                string        `json:"id" gorm:"primaryKey;type:uuid"`
	Name              string        `json:"name" gorm:"not null"`
	Category          string        `json:"category"`
	AmountCents       int64         `json:"amount_cents" gorm:"column:amount_cents;not null"`
	Kind              string        `json:"kind" gorm:"column:kind;not null"`
	PaidBy            string        `json:"paid_by" gorm:"column:paid_by;not null"`
	Notes             *string       `json:"notes,omitempty" gorm:"column:notes"`
	TotalInstallments *int          `json:"total_installments,omitempty" gorm:"column:total_installments"`
	FirstDueDate      *time.Time    `json:"first_due_date,omitempty" gorm:"column:first_due_date;type:date"`
	DueDate           *time.Time    `json:"due_date,omitempty" gorm:"column:due_date;type:date"`
	CreatedAt         time.Time     `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt         time.Time     `json:"updated_at" gorm:"column:updated_at;default:now()"`
	Installments      []Installment `json:"installments,omitempty" gorm:"foreignKey:ExpenseID;constraint:OnDelete:CASCADE"`
}

func (Expense) TableName() string {
	return "expenses"
}

// Installment is one dated slice of an installment-kind expense. Exactly one
// row exists per installment number in [1, total_installments].
type Installment struct {
	ID                string     `json:"id" gorm:"primaryKey;type:uuid"`
	ExpenseID         string     `json:"expense_id" gorm:"column:expense_id;not null;index"`
	InstallmentNumber int        `json:"installment_number" gorm:"column:installment_number;not null"`
	AmountCents       int64      `json:"amount_cents" gorm:"column:amount_cents;not null"`
	DueDate           time.Time  `json:"due_date" gorm:"column:due_date;type:date;not null"`
	Status            string     `json:"status" gorm:"column:status;default:pending"`
	PaidAt            *time.Time `json:"paid_at,omitempty" gorm:"column:paid_at"`
	CreatedAt         time.Time  `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt         time.Time  `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Installment) TableName() string {
	return "installments"
}
