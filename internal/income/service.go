package income

import (
	"context"
	"log/slog"
	"time"

	errors "github.com/homeledger/homeledger/internal"
	"github.com/homeledger/homeledger/internal/core/events"
	"github.com/homeledger/homeledger/internal/core/money"
	"github.com/homeledger/homeledger/internal/core/person"
)

// Repository defines the data access methods for income entries.
type Repository interface {
	Create(entry *IncomeEntry) error
	GetByID(id string) (*IncomeEntry, error)
	GetAll() ([]*IncomeEntry, error)
	Update(entry *IncomeEntry) error
	Delete(id string) error
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

func (s *Service) CreateIncome(dto CreateIncomeDTO) (*IncomeEntry, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("income validation failed", "error", err)
		return nil, err
	}

	entry := NewIncomeEntry(dto)
	if err := s.repo.Create(entry); err != nil {
		s.logger.Error("failed to create income entry", "error", err)
		return nil, err
	}

	s.publish(events.NewIncomeChanged(entry.ID, "created"))
	s.logger.Info("income entry created",
		"income_id", entry.ID,
		"person", entry.Person,
		"amount_cents", entry.Amount)

	return entry, nil
}

func (s *Service) GetIncome(id string) (*IncomeEntry, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get income entry", "error", err, "income_id", id)
		return nil, err
	}
	return entry, nil
}

func (s *Service) ListIncomes() ([]*IncomeEntry, error) {
	entries, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list income entries", "error", err)
		return nil, err
	}
	return entries, nil
}

func (s *Service) UpdateIncome(id string, dto UpdateIncomeDTO) (*IncomeEntry, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("income update validation failed", "error", err, "income_id", id)
		return nil, err
	}

	entry, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("income entry not found for update", "error", err, "income_id", id)
		return nil, errors.ErrIncomeNotFound
	}

	if dto.Person != nil {
		entry.Person = person.Tag(*dto.Person)
	}
	if dto.Name != nil {
		entry.Name = *dto.Name
	}
	if dto.AmountCents != nil {
		entry.Amount = money.Cents(*dto.AmountCents)
	}
	entry.UpdatedAt = time.Now()

	if err := s.repo.Update(entry); err != nil {
		s.logger.Error("failed to update income entry", "error", err, "income_id", id)
		return nil, err
	}

	s.publish(events.NewIncomeChanged(entry.ID, "updated"))
	s.logger.Info("income entry updated", "income_id", entry.ID)

	return entry, nil
}

func (s *Service) DeleteIncome(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		s.logger.Error("income entry not found for delete", "error", err, "income_id", id)
		return errors.ErrIncomeNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete income entry", "error", err, "income_id", id)
		return err
	}

	s.publish(events.NewIncomeChanged(id, "deleted"))
	s.logger.Info("income entry deleted", "income_id", id)

	return nil
}

func (s *Service) publish(event events.BaseEvent) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(context.Background(), event); err != nil {
		s.logger.Warn("failed to publish income event", "error", err)
	}
}
