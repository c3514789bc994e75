package income

import "time"

// IncomeEntry is the persistence shape of one income record. Amounts are
// integer cents.
type IncomeEntry struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Person      string    `json:"person" gorm:"column:person;not null"`
	Name        string    `json:"name" gorm:"not null"`
	AmountCents int64     `json:"amount_cents" gorm:"column:amount_cents;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (IncomeEntry) TableName() string {
	return "income_entries"
}
