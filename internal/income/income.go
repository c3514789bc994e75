package income

import (
	"time"

	"github.com/google/uuid"

	incomeDatamodel "github.com/homeledger/homeledger/internal/core/datamodel/income"
	"github.com/homeledger/homeledger/internal/core/money"
	"github.com/homeledger/homeledger/internal/core/person"
)

// IncomeEntry models one recurring income source (a salary, an allowance).
// Entries are not date-scoped: the set of entries describes the household's
// current monthly income level.
type IncomeEntry struct {
	ID        string       `json:"id"`
	Person    person.Tag   `json:"person"`
	Name      string       `json:"name"`
	Amount    money.Cents  `json:"amount_cents"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func NewIncomeEntry(dto CreateIncomeDTO) *IncomeEntry {
	now := time.Now()
	return &IncomeEntry{
		ID:        uuid.NewString(),
		Person:    person.Tag(dto.Person),
		Name:      dto.Name,
		Amount:    money.Cents(dto.AmountCents),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func ToDataModel(e *IncomeEntry) *incomeDatamodel.IncomeEntry {
	return &incomeDatamodel.IncomeEntry{
		ID:          e.ID,
		Person:      string(e.Person),
		Name:        e.Name,
		AmountCents: int64(e.Amount),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromDataModel(e *incomeDatamodel.IncomeEntry) *IncomeEntry {
	return &IncomeEntry{
		ID:        e.ID,
		Person:    person.Tag(e.Person),
		Name:      e.Name,
		Amount:    money.Cents(e.AmountCents),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromDataModelSlice(entries []*incomeDatamodel.IncomeEntry) []*IncomeEntry {
	result := make([]*IncomeEntry, len(entries))
	for i, e := range entries {
		result[i] = FromDataModel(e)
	}
	return result
}
