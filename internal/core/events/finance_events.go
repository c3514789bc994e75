package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventExpenseCreated           = "expense.created"
	EventExpenseDeleted           = "expense.deleted"
	EventInstallmentStatusChanged = "installment.status_changed"
	EventIncomeChanged            = "income.changed"
	EventOverrideSaved            = "projection.override_saved"
)

func NewExpenseCreated(expenseID, name, kind string, amountCents int64, installments int) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      EventExpenseCreated,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"expense_id":   expenseID,
			"name":         name,
			"kind":         kind,
			"amount_cents": amountCents,
			"installments": installments,
		},
	}
}

func NewExpenseDeleted(expenseID string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      EventExpenseDeleted,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"expense_id": expenseID,
		},
	}
}

func NewInstallmentStatusChanged(installmentID, expenseID, status string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      EventInstallmentStatusChanged,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"installment_id": installmentID,
			"expense_id":     expenseID,
			"status":         status,
		},
	}
}

func NewIncomeChanged(incomeID, action string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      EventIncomeChanged,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"income_id": incomeID,
			"action":    action,
		},
	}
}

func NewOverrideSaved(year, month int) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      EventOverrideSaved,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"year":  year,
			"month": month,
		},
	}
}
