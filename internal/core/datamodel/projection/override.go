package projection

import "time"

// Override stores manually entered income/expense totals that replace the
// computed values for one calendar month. (Year, Month) is unique.
type Override struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Year         int       `json:"year" gorm:"not null;uniqueIndex:idx_overrides_year_month"`
	Month        int       `json:"month" gorm:"not null;uniqueIndex:idx_overrides_year_month"`
	IncomeCents  int64     `json:"income_cents" gorm:"column:income_cents;not null"`
	ExpenseCents int64     `json:"expense_cents" gorm:"column:expense_cents;not null"`
	Note         *string   `json:"note,omitempty" gorm:"column:note"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Override) TableName() string {
	return "projection_overrides"
}
