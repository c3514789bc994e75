package projection

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	errors "github.com/homeledger/homeledger/internal"
	"github.com/homeledger/homeledger/internal/core/events"
	"github.com/homeledger/homeledger/internal/core/money"
	"github.com/homeledger/homeledger/internal/expense"
	"github.com/homeledger/homeledger/internal/income"
)

// IncomeSource and ExpenseSource are the read-only slices of the other
// modules' repositories the engine needs to assemble a snapshot.
type IncomeSource interface {
	GetAll() ([]*income.IncomeEntry, error)
}

type ExpenseSource interface {
	GetAll() ([]*expense.Expense, error)
}

// OverrideRepository defines the data access methods for month overrides.
type OverrideRepository interface {
	Upsert(override *Override) error
	GetAll() ([]*Override, error)
	GetByMonth(year, month int) (*Override, error)
	Delete(year, month int) error
}

type Service struct {
	incomes    IncomeSource
	expenses   ExpenseSource
	overrides  OverrideRepository
	bus        *events.EventBus
	logger     *slog.Logger
	horizon    int
	maxHorizon int
	now        func() time.Time
}

func NewService(incomes IncomeSource, expenses ExpenseSource, overrides OverrideRepository, bus *events.EventBus, logger *slog.Logger, defaultHorizon, maxHorizon int) *Service {
	if defaultHorizon < 1 {
		defaultHorizon = errors.DefaultProjectionHorizon
	}
	if maxHorizon < defaultHorizon {
		maxHorizon = errors.MaxProjectionHorizon
	}
	return &Service{
		incomes:    incomes,
		expenses:   expenses,
		overrides:  overrides,
		bus:        bus,
		logger:     logger,
		horizon:    defaultHorizon,
		maxHorizon: maxHorizon,
		now:        time.Now,
	}
}

// GetProjection computes `months` consecutive months starting from the
// current month. months <= 0 falls back to the configured default horizon;
// requests beyond the configured maximum are clamped.
func (s *Service) GetProjection(months int, filter Filter) (*ProjectionResponse, error) {
	if months <= 0 {
		months = s.horizon
	}
	if months > s.maxHorizon {
		months = s.maxHorizon
	}

	snapshot, err := s.loadSnapshot()
	if err != nil {
		return nil, err
	}

	overrides, err := s.overrides.GetAll()
	if err != nil {
		s.logger.Error("failed to load overrides", "error", err)
		return nil, err
	}

	now := s.now()
	totals, warnings := ComputeProjection(now.Year(), now.Month(), months, snapshot, overrides, filter)

	if len(warnings) > 0 {
		s.logger.Warn("projection computed with skipped records", "warnings", len(warnings))
	}

	return &ProjectionResponse{Months: totals, Warnings: warnings}, nil
}

// GetSummary returns the dashboard totals: overall income level, the monthly
// fixed load, total outstanding installment debt, one-off expenses still
// ahead, and the current month's balance.
func (s *Service) GetSummary() (*SummaryResponse, error) {
	snapshot, err := s.loadSnapshot()
	if err != nil {
		return nil, err
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var summary SummaryResponse
	for _, entry := range snapshot.Incomes {
		summary.IncomeCents += int64(entry.Amount)
	}
	for _, exp := range snapshot.Expenses {
		switch exp.Kind {
		case expense.KindFixed:
			summary.FixedCents += int64(exp.Amount)
		case expense.KindInstallment:
			for i := range exp.Installments {
				inst := &exp.Installments[i]
				if inst.IsPaid() {
					continue
				}
				summary.PendingDebtCents += int64(inst.Amount)
				summary.PendingInstallments++
			}
		case expense.KindOneOff:
			if exp.DueDate != nil && !exp.DueDate.Before(monthStart) {
				summary.UpcomingOneOffs += int64(exp.Amount)
			}
		}
	}

	current, _ := ComputeMonth(now.Year(), now.Month(), snapshot, Filter{})
	summary.MonthlyBalance = int64(current.BalanceCents)

	return &summary, nil
}

func (s *Service) ListOverrides() ([]*Override, error) {
	overrides, err := s.overrides.GetAll()
	if err != nil {
		s.logger.Error("failed to list overrides", "error", err)
		return nil, err
	}
	return overrides, nil
}

// SaveOverride upserts the override for (year, month).
func (s *Service) SaveOverride(year, month int, dto UpsertOverrideDTO) (*Override, error) {
	if appErr := validateMonth(year, month); appErr != nil {
		return nil, appErr
	}
	if err := dto.Validate(); err != nil {
		s.logger.Error("override validation failed", "error", err, "year", year, "month", month)
		return nil, err
	}

	now := s.now()
	override := &Override{
		ID:           uuid.NewString(),
		Year:         year,
		Month:        month,
		IncomeCents:  money.Cents(dto.IncomeCents),
		ExpenseCents: money.Cents(dto.ExpenseCents),
		Note:         dto.Note,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if existing, err := s.overrides.GetByMonth(year, month); err == nil {
		override.ID = existing.ID
		override.CreatedAt = existing.CreatedAt
	}

	if err := s.overrides.Upsert(override); err != nil {
		s.logger.Error("failed to save override", "error", err, "year", year, "month", month)
		return nil, err
	}

	s.publish(events.NewOverrideSaved(year, month))
	s.logger.Info("projection override saved",
		"year", year,
		"month", month,
		"income_cents", override.IncomeCents,
		"expense_cents", override.ExpenseCents)

	return override, nil
}

func (s *Service) DeleteOverride(year, month int) error {
	if appErr := validateMonth(year, month); appErr != nil {
		return appErr
	}

	if _, err := s.overrides.GetByMonth(year, month); err != nil {
		s.logger.Error("override not found for delete", "error", err, "year", year, "month", month)
		return errors.ErrOverrideNotFound
	}

	if err := s.overrides.Delete(year, month); err != nil {
		s.logger.Error("failed to delete override", "error", err, "year", year, "month", month)
		return err
	}

	s.logger.Info("projection override deleted", "year", year, "month", month)
	return nil
}

func (s *Service) loadSnapshot() (Snapshot, error) {
	incomes, err := s.incomes.GetAll()
	if err != nil {
		s.logger.Error("failed to load incomes for projection", "error", err)
		return Snapshot{}, err
	}
	expenses, err := s.expenses.GetAll()
	if err != nil {
		s.logger.Error("failed to load expenses for projection", "error", err)
		return Snapshot{}, err
	}
	return Snapshot{Incomes: incomes, Expenses: expenses}, nil
}

func validateMonth(year, month int) *errors.AppError {
	if year < 2000 || year > 2200 {
		return errors.NewValidationError("year must be between 2000 and 2200", errors.ErrCodeInvalidDate)
	}
	if month < 1 || month > 12 {
		return errors.NewValidationError("month must be between 1 and 12", errors.ErrCodeInvalidDate)
	}
	return nil
}

func (s *Service) publish(event events.BaseEvent) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(context.Background(), event); err != nil {
		s.logger.Warn("failed to publish projection event", "error", err)
	}
}
