package income_test

import (
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errors "github.com/homeledger/homeledger/internal"
	"github.com/homeledger/homeledger/internal/core/money"
	"github.com/homeledger/homeledger/internal/core/person"
	"github.com/homeledger/homeledger/internal/income"
)

// Mock repository for testing
type mockIncomeRepository struct {
	entries     map[string]*income.IncomeEntry
	createError error
	getError    error
	updateError error
	deleteError error
}

func newMockIncomeRepository() *mockIncomeRepository {
	return &mockIncomeRepository{entries: make(map[string]*income.IncomeEntry)}
}

func (m *mockIncomeRepository) Create(entry *income.IncomeEntry) error {
	if m.createError != nil {
		return m.createError
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockIncomeRepository) GetByID(id string) (*income.IncomeEntry, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	entry, exists := m.entries[id]
	if !exists {
		return nil, errors.ErrIncomeNotFound
	}
	return entry, nil
}

func (m *mockIncomeRepository) GetAll() ([]*income.IncomeEntry, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	all := make([]*income.IncomeEntry, 0, len(m.entries))
	for _, entry := range m.entries {
		all = append(all, entry)
	}
	return all, nil
}

func (m *mockIncomeRepository) Update(entry *income.IncomeEntry) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockIncomeRepository) Delete(id string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.entries, id)
	return nil
}

var _ = Describe("IncomeService", func() {
	var (
		incomeService *income.Service
		mockRepo      *mockIncomeRepository
		logger        *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockIncomeRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		incomeService = income.NewService(mockRepo, nil, logger)
	})

	Describe("CreateIncome", func() {
		It("should create an entry with a generated ID", func() {
			dto := income.CreateIncomeDTO{
				Person:      "person1",
				Name:        "Salary",
				AmountCents: 3500_00,
			}

			entry, err := incomeService.CreateIncome(dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(entry.ID).ToNot(BeEmpty())
			Expect(entry.Person).To(Equal(person.Person1))
			Expect(entry.Amount).To(Equal(money.Cents(3500_00)))
		})

		It("should reject an unknown person tag", func() {
			dto := income.CreateIncomeDTO{
				Person:      "stranger",
				Name:        "Salary",
				AmountCents: 3500_00,
			}

			_, err := incomeService.CreateIncome(dto)

			Expect(err).To(HaveOccurred())
			Expect(mockRepo.entries).To(BeEmpty())
		})

		It("should reject a negative amount", func() {
			dto := income.CreateIncomeDTO{
				Person:      "person1",
				Name:        "Salary",
				AmountCents: -100,
			}

			_, err := incomeService.CreateIncome(dto)

			Expect(err).To(HaveOccurred())
		})

		It("should reject a missing name", func() {
			dto := income.CreateIncomeDTO{
				Person:      "person1",
				AmountCents: 3500_00,
			}

			_, err := incomeService.CreateIncome(dto)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("UpdateIncome", func() {
		It("should apply partial updates", func() {
			created, err := incomeService.CreateIncome(income.CreateIncomeDTO{
				Person: "person1", Name: "Salary", AmountCents: 3500_00,
			})
			Expect(err).ToNot(HaveOccurred())

			newAmount := int64(3700_00)
			updated, err := incomeService.UpdateIncome(created.ID,
				income.UpdateIncomeDTO{AmountCents: &newAmount})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Amount).To(Equal(money.Cents(3700_00)))
			Expect(updated.Name).To(Equal("Salary"))
			Expect(updated.Person).To(Equal(person.Person1))
		})

		It("should report a missing entry", func() {
			name := "Side gig"
			_, err := incomeService.UpdateIncome("nope", income.UpdateIncomeDTO{Name: &name})

			Expect(err).To(Equal(errors.ErrIncomeNotFound))
		})
	})

	Describe("DeleteIncome", func() {
		It("should remove an existing entry", func() {
			created, err := incomeService.CreateIncome(income.CreateIncomeDTO{
				Person: "person2", Name: "Salary", AmountCents: 2800_00,
			})
			Expect(err).ToNot(HaveOccurred())

			Expect(incomeService.DeleteIncome(created.ID)).To(Succeed())
			Expect(mockRepo.entries).To(BeEmpty())
		})

		It("should report a missing entry", func() {
			err := incomeService.DeleteIncome("nope")
			Expect(err).To(Equal(errors.ErrIncomeNotFound))
		})
	})

	Describe("ListIncomes", func() {
		It("should return every entry", func() {
			for _, p := range []string{"person1", "person2", "allowance"} {
				_, err := incomeService.CreateIncome(income.CreateIncomeDTO{
					Person: p, Name: "Entry", AmountCents: 100_00,
				})
				Expect(err).ToNot(HaveOccurred())
			}

			entries, err := incomeService.ListIncomes()

			Expect(err).ToNot(HaveOccurred())
			Expect(entries).To(HaveLen(3))
		})
	})
})
