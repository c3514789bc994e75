// Package siteconfig stores the display labels the UI renders: person names,
// card titles, section headings. Keys are stable identifiers; values are the
// text shown.
package siteconfig

import (
	"time"

	"github.com/google/uuid"

	siteconfigDatamodel "github.com/homeledger/homeledger/internal/core/datamodel/siteconfig"
)

type Entry struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Label     string    `json:"label"`
	Category  string    `json:"category"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewEntry(key, value, label, category string) *Entry {
	now := time.Now()
	return &Entry{
		ID:        uuid.NewString(),
		Key:       key,
		Value:     value,
		Label:     label,
		Category:  category,
		Type:      "text",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Defaults returns the label set a fresh installation starts with.
func Defaults() []*Entry {
	return []*Entry{
		NewEntry("person1_name", "Person 1", "First person display name", "people"),
		NewEntry("person2_name", "Person 2", "Second person display name", "people"),
		NewEntry("joint_name", "Joint", "Joint pool display name", "people"),
		NewEntry("allowance_name", "Allowance", "Meal allowance display name", "people"),
		NewEntry("site_title", "Household Ledger", "Browser and header title", "general"),
		NewEntry("income_card_title", "Monthly income", "Income summary card title", "dashboard"),
		NewEntry("expense_card_title", "Monthly expenses", "Expense summary card title", "dashboard"),
		NewEntry("balance_card_title", "Balance", "Balance summary card title", "dashboard"),
		NewEntry("projection_title", "12-month projection", "Projection section heading", "dashboard"),
	}
}

func ToDataModel(e *Entry) *siteconfigDatamodel.Entry {
	return &siteconfigDatamodel.Entry{
		ID:        e.ID,
		Key:       e.Key,
		Value:     e.Value,
		Label:     e.Label,
		Category:  e.Category,
		Type:      e.Type,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromDataModel(e *siteconfigDatamodel.Entry) *Entry {
	return &Entry{
		ID:        e.ID,
		Key:       e.Key,
		Value:     e.Value,
		Label:     e.Label,
		Category:  e.Category,
		Type:      e.Type,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromDataModelSlice(entries []*siteconfigDatamodel.Entry) []*Entry {
	result := make([]*Entry, len(entries))
	for i, e := range entries {
		result[i] = FromDataModel(e)
	}
	return result
}
