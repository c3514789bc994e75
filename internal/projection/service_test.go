package projection_test

import (
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errors "github.com/homeledger/homeledger/internal"
	"github.com/homeledger/homeledger/internal/core/money"
	"github.com/homeledger/homeledger/internal/core/person"
	"github.com/homeledger/homeledger/internal/expense"
	"github.com/homeledger/homeledger/internal/income"
	"github.com/homeledger/homeledger/internal/projection"
)

type mockIncomeSource struct {
	incomes []*income.IncomeEntry
	err     error
}

func (m *mockIncomeSource) GetAll() ([]*income.IncomeEntry, error) {
	return m.incomes, m.err
}

type mockExpenseSource struct {
	expenses []*expense.Expense
	err      error
}

func (m *mockExpenseSource) GetAll() ([]*expense.Expense, error) {
	return m.expenses, m.err
}

type mockOverrideRepository struct {
	overrides map[[2]int]*projection.Override
	saveError error
	getError  error
}

func newMockOverrideRepository() *mockOverrideRepository {
	return &mockOverrideRepository{overrides: make(map[[2]int]*projection.Override)}
}

func (m *mockOverrideRepository) Upsert(o *projection.Override) error {
	if m.saveError != nil {
		return m.saveError
	}
	m.overrides[[2]int{o.Year, o.Month}] = o
	return nil
}

func (m *mockOverrideRepository) GetAll() ([]*projection.Override, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	all := make([]*projection.Override, 0, len(m.overrides))
	for _, o := range m.overrides {
		all = append(all, o)
	}
	return all, nil
}

func (m *mockOverrideRepository) GetByMonth(year, month int) (*projection.Override, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	o, exists := m.overrides[[2]int{year, month}]
	if !exists {
		return nil, errors.ErrOverrideNotFound
	}
	return o, nil
}

func (m *mockOverrideRepository) Delete(year, month int) error {
	delete(m.overrides, [2]int{year, month})
	return nil
}

var _ = Describe("ProjectionService", func() {
	var (
		service       *projection.Service
		incomeSource  *mockIncomeSource
		expenseSource *mockExpenseSource
		overrideRepo  *mockOverrideRepository
		logger        *slog.Logger
	)

	BeforeEach(func() {
		incomeSource = &mockIncomeSource{
			incomes: []*income.IncomeEntry{
				{ID: "inc-1", Person: person.Person1, Name: "Salary", Amount: 3000_00},
			},
		}
		expenseSource = &mockExpenseSource{
			expenses: []*expense.Expense{
				{ID: "exp-rent", Name: "Rent", Category: "housing", Amount: 1000_00,
					Kind: expense.KindFixed, PaidBy: person.Joint},
			},
		}
		overrideRepo = newMockOverrideRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = projection.NewService(incomeSource, expenseSource, overrideRepo, nil, logger, 12, 60)
	})

	Describe("GetProjection", func() {
		It("defaults to the configured horizon", func() {
			resp, err := service.GetProjection(0, projection.Filter{})

			Expect(err).ToNot(HaveOccurred())
			Expect(resp.Months).To(HaveLen(12))
		})

		It("uses the requested horizon when given", func() {
			resp, err := service.GetProjection(3, projection.Filter{})

			Expect(err).ToNot(HaveOccurred())
			Expect(resp.Months).To(HaveLen(3))
			for _, m := range resp.Months {
				Expect(m.IncomeCents).To(Equal(money.Cents(3000_00)))
				Expect(m.ExpenseCents).To(Equal(money.Cents(1000_00)))
			}
		})

		It("clamps the horizon to the configured maximum", func() {
			resp, err := service.GetProjection(500, projection.Filter{})

			Expect(err).ToNot(HaveOccurred())
			Expect(resp.Months).To(HaveLen(60))
		})

		It("propagates a failing income source", func() {
			incomeSource.err = errors.NewBackendUnavailableError(nil)

			_, err := service.GetProjection(3, projection.Filter{})

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetSummary", func() {
		It("totals the standing figures", func() {
			summary, err := service.GetSummary()

			Expect(err).ToNot(HaveOccurred())
			Expect(summary.IncomeCents).To(Equal(int64(3000_00)))
			Expect(summary.FixedCents).To(Equal(int64(1000_00)))
			Expect(summary.MonthlyBalance).To(Equal(int64(2000_00)))
		})
	})

	Describe("SaveOverride", func() {
		It("creates a new override", func() {
			override, err := service.SaveOverride(2024, 2, projection.UpsertOverrideDTO{
				IncomeCents:  5000_00,
				ExpenseCents: 2000_00,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(override.ID).ToNot(BeEmpty())
			Expect(overrideRepo.overrides).To(HaveLen(1))
		})

		It("keeps the identity of an existing override on upsert", func() {
			first, err := service.SaveOverride(2024, 2, projection.UpsertOverrideDTO{
				IncomeCents: 5000_00, ExpenseCents: 2000_00,
			})
			Expect(err).ToNot(HaveOccurred())

			second, err := service.SaveOverride(2024, 2, projection.UpsertOverrideDTO{
				IncomeCents: 5500_00, ExpenseCents: 2100_00,
			})
			Expect(err).ToNot(HaveOccurred())

			Expect(second.ID).To(Equal(first.ID))
			Expect(overrideRepo.overrides).To(HaveLen(1))
			Expect(second.IncomeCents).To(Equal(money.Cents(5500_00)))
		})

		It("rejects an out-of-range month", func() {
			_, err := service.SaveOverride(2024, 13, projection.UpsertOverrideDTO{})
			Expect(err).To(HaveOccurred())

			_, err = service.SaveOverride(2024, 0, projection.UpsertOverrideDTO{})
			Expect(err).To(HaveOccurred())
		})

		It("rejects negative amounts", func() {
			_, err := service.SaveOverride(2024, 2, projection.UpsertOverrideDTO{
				IncomeCents: -1,
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("DeleteOverride", func() {
		It("removes an existing override", func() {
			_, err := service.SaveOverride(2024, 2, projection.UpsertOverrideDTO{
				IncomeCents: 5000_00, ExpenseCents: 2000_00,
			})
			Expect(err).ToNot(HaveOccurred())

			Expect(service.DeleteOverride(2024, 2)).To(Succeed())
			Expect(overrideRepo.overrides).To(BeEmpty())
		})

		It("reports a missing override", func() {
			err := service.DeleteOverride(2024, 2)
			Expect(err).To(Equal(errors.ErrOverrideNotFound))
		})
	})
})
