package expense

import (
	"context"
	"log/slog"
	"time"

	errors "github.com/homeledger/homeledger/internal"
	"github.com/homeledger/homeledger/internal/core/events"
	"github.com/homeledger/homeledger/internal/core/money"
	"github.com/homeledger/homeledger/internal/core/person"
)

// Repository defines the data access methods for expenses and their
// installments. Create must persist the expense and its installments in a
// single transaction.
type Repository interface {
	Create(exp *Expense) error
	GetByID(id string) (*Expense, error)
	GetAll() ([]*Expense, error)
	Update(exp *Expense) error
	Delete(id string) error
	GetInstallment(id string) (*Installment, error)
	UpdateInstallment(inst *Installment) error
}

type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

// CreateExpense validates the payload, builds the expense and, for
// installment-kind expenses, generates the full installment schedule before
// handing everything to the repository as one unit. An expense is never
// persisted with a partial schedule.
func (s *Service) CreateExpense(dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense validation failed", "error", err)
		return nil, err
	}

	exp := NewExpense(dto)

	if exp.Kind == KindInstallment {
		installments, appErr := GenerateInstallments(
			exp.ID,
			exp.Amount,
			*dto.TotalInstallments,
			*dto.FirstDueDate,
			dto.PaidInstallments,
			time.Now(),
		)
		if appErr != nil {
			s.logger.Error("installment generation failed", "error", appErr, "expense_id", exp.ID)
			return nil, appErr
		}
		exp.Installments = installments
	}

	if err := s.repo.Create(exp); err != nil {
		s.logger.Error("failed to create expense", "error", err, "expense_id", exp.ID)
		return nil, err
	}

	s.publish(events.NewExpenseCreated(exp.ID, exp.Name, string(exp.Kind), int64(exp.Amount), len(exp.Installments)))
	s.logger.Info("expense created",
		"expense_id", exp.ID,
		"kind", exp.Kind,
		"amount_cents", exp.Amount,
		"installments", len(exp.Installments))

	return exp, nil
}

func (s *Service) GetExpense(id string) (*Expense, error) {
	exp, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get expense", "error", err, "expense_id", id)
		return nil, err
	}
	return exp, nil
}

func (s *Service) ListExpenses() ([]*Expense, error) {
	expenses, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err)
		return nil, err
	}
	return expenses, nil
}

func (s *Service) UpdateExpense(id string, dto UpdateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense update validation failed", "error", err, "expense_id", id)
		return nil, err
	}

	exp, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("expense not found for update", "error", err, "expense_id", id)
		return nil, errors.ErrExpenseNotFound
	}

	if dto.Name != nil {
		exp.Name = *dto.Name
	}
	if dto.Category != nil {
		exp.Category = *dto.Category
	}
	if dto.AmountCents != nil {
		exp.Amount = money.Cents(*dto.AmountCents)
	}
	if dto.PaidBy != nil {
		exp.PaidBy = person.Tag(*dto.PaidBy)
	}
	if dto.Notes != nil {
		exp.Notes = dto.Notes
	}
	exp.UpdatedAt = time.Now()

	if err := s.repo.Update(exp); err != nil {
		s.logger.Error("failed to update expense", "error", err, "expense_id", id)
		return nil, err
	}

	s.logger.Info("expense updated", "expense_id", exp.ID)
	return exp, nil
}

// DeleteExpense removes the expense together with its installment schedule.
func (s *Service) DeleteExpense(id string) error {
	exp, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("expense not found for delete", "error", err, "expense_id", id)
		return errors.ErrExpenseNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete expense", "error", err, "expense_id", id)
		return err
	}

	s.publish(events.NewExpenseDeleted(exp.ID))
	s.logger.Info("expense deleted", "expense_id", id, "installments", len(exp.Installments))

	return nil
}

// SetInstallmentStatus flips one installment between pending and paid. Paid
// installments carry the time they were marked; reverting to pending clears
// it.
func (s *Service) SetInstallmentStatus(installmentID string, dto UpdateInstallmentStatusDTO) (*Installment, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("installment status validation failed", "error", err, "installment_id", installmentID)
		return nil, err
	}

	inst, err := s.repo.GetInstallment(installmentID)
	if err != nil {
		s.logger.Error("installment not found", "error", err, "installment_id", installmentID)
		return nil, err
	}

	now := time.Now()
	if dto.Status == StatusPaid {
		inst.MarkPaid(now)
	} else {
		inst.MarkPending(now)
	}

	if err := s.repo.UpdateInstallment(inst); err != nil {
		s.logger.Error("failed to update installment", "error", err, "installment_id", installmentID)
		return nil, err
	}

	s.publish(events.NewInstallmentStatusChanged(inst.ID, inst.ExpenseID, inst.Status))
	s.logger.Info("installment status changed",
		"installment_id", inst.ID,
		"expense_id", inst.ExpenseID,
		"status", inst.Status)

	return inst, nil
}

func (s *Service) publish(event events.BaseEvent) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(context.Background(), event); err != nil {
		s.logger.Warn("failed to publish expense event", "error", err)
	}
}
