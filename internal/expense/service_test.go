package expense_test

import (
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errors "github.com/homeledger/homeledger/internal"
	"github.com/homeledger/homeledger/internal/core/money"
	"github.com/homeledger/homeledger/internal/expense"
)

// Mock repository for testing
type mockExpenseRepository struct {
	expenses     map[string]*expense.Expense
	installments map[string]*expense.Installment
	createError  error
	getError     error
	updateError  error
	deleteError  error
}

func newMockExpenseRepository() *mockExpenseRepository {
	return &mockExpenseRepository{
		expenses:     make(map[string]*expense.Expense),
		installments: make(map[string]*expense.Installment),
	}
}

func (m *mockExpenseRepository) Create(exp *expense.Expense) error {
	if m.createError != nil {
		return m.createError
	}
	m.expenses[exp.ID] = exp
	for i := range exp.Installments {
		inst := exp.Installments[i]
		m.installments[inst.ID] = &inst
	}
	return nil
}

func (m *mockExpenseRepository) GetByID(id string) (*expense.Expense, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	exp, exists := m.expenses[id]
	if !exists {
		return nil, errors.ErrExpenseNotFound
	}
	return exp, nil
}

func (m *mockExpenseRepository) GetAll() ([]*expense.Expense, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	all := make([]*expense.Expense, 0, len(m.expenses))
	for _, exp := range m.expenses {
		all = append(all, exp)
	}
	return all, nil
}

func (m *mockExpenseRepository) Update(exp *expense.Expense) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.expenses[exp.ID] = exp
	return nil
}

func (m *mockExpenseRepository) Delete(id string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	exp, exists := m.expenses[id]
	if exists {
		for _, inst := range exp.Installments {
			delete(m.installments, inst.ID)
		}
	}
	delete(m.expenses, id)
	return nil
}

func (m *mockExpenseRepository) GetInstallment(id string) (*expense.Installment, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	inst, exists := m.installments[id]
	if !exists {
		return nil, errors.ErrInstallmentNotFound
	}
	return inst, nil
}

func (m *mockExpenseRepository) UpdateInstallment(inst *expense.Installment) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.installments[inst.ID] = inst
	return nil
}

var _ = Describe("ExpenseService", func() {
	var (
		expenseService *expense.Service
		mockRepo       *mockExpenseRepository
		logger         *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockExpenseRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		expenseService = expense.NewService(mockRepo, nil, logger)
	})

	Describe("CreateExpense", func() {
		Context("when creating a fixed expense", func() {
			It("should create it without installments", func() {
				dto := expense.CreateExpenseDTO{
					Name:        "Rent",
					Category:    "housing",
					AmountCents: 1500_00,
					Kind:        string(expense.KindFixed),
					PaidBy:      "joint",
				}

				result, err := expenseService.CreateExpense(dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(result).ToNot(BeNil())
				Expect(result.ID).ToNot(BeEmpty())
				Expect(result.Kind).To(Equal(expense.KindFixed))
				Expect(result.Amount).To(Equal(money.Cents(1500_00)))
				Expect(result.Installments).To(BeEmpty())
			})
		})

		Context("when creating an installment expense", func() {
			It("should generate and persist the full schedule", func() {
				count := 4
				firstDue := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
				dto := expense.CreateExpenseDTO{
					Name:              "Laptop",
					Category:          "electronics",
					AmountCents:       1200_00,
					Kind:              string(expense.KindInstallment),
					PaidBy:            "person1",
					TotalInstallments: &count,
					FirstDueDate:      &firstDue,
				}

				result, err := expenseService.CreateExpense(dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Installments).To(HaveLen(4))
				Expect(mockRepo.installments).To(HaveLen(4))
				for i, inst := range result.Installments {
					Expect(inst.ExpenseID).To(Equal(result.ID))
					Expect(inst.InstallmentNumber).To(Equal(i + 1))
					Expect(inst.Amount).To(Equal(money.Cents(300_00)))
				}
			})

			It("should honor a pre-paid prefix", func() {
				count := 6
				firstDue := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
				dto := expense.CreateExpenseDTO{
					Name:              "Washing machine",
					Category:          "household",
					AmountCents:       1740_00,
					Kind:              string(expense.KindInstallment),
					PaidBy:            "joint",
					TotalInstallments: &count,
					FirstDueDate:      &firstDue,
					PaidInstallments:  2,
				}

				result, err := expenseService.CreateExpense(dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Installments[0].Status).To(Equal(expense.StatusPaid))
				Expect(result.Installments[1].Status).To(Equal(expense.StatusPaid))
				Expect(result.Installments[2].Status).To(Equal(expense.StatusPending))
			})

			It("should reject a missing installment count", func() {
				firstDue := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
				dto := expense.CreateExpenseDTO{
					Name:         "Laptop",
					Category:     "electronics",
					AmountCents:  1200_00,
					Kind:         string(expense.KindInstallment),
					PaidBy:       "person1",
					FirstDueDate: &firstDue,
				}

				_, err := expenseService.CreateExpense(dto)

				Expect(err).To(HaveOccurred())
				Expect(mockRepo.expenses).To(BeEmpty())
			})

			It("should reject a missing first due date", func() {
				count := 4
				dto := expense.CreateExpenseDTO{
					Name:              "Laptop",
					Category:          "electronics",
					AmountCents:       1200_00,
					Kind:              string(expense.KindInstallment),
					PaidBy:            "person1",
					TotalInstallments: &count,
				}

				_, err := expenseService.CreateExpense(dto)

				Expect(err).To(HaveOccurred())
			})
		})

		Context("when creating a one-off expense", func() {
			It("should require a due date", func() {
				dto := expense.CreateExpenseDTO{
					Name:        "Concert tickets",
					Category:    "leisure",
					AmountCents: 200_00,
					Kind:        string(expense.KindOneOff),
					PaidBy:      "person2",
				}

				_, err := expenseService.CreateExpense(dto)

				Expect(err).To(HaveOccurred())
			})

			It("should store the due date", func() {
				due := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
				dto := expense.CreateExpenseDTO{
					Name:        "Concert tickets",
					Category:    "leisure",
					AmountCents: 200_00,
					Kind:        string(expense.KindOneOff),
					PaidBy:      "person2",
					DueDate:     &due,
				}

				result, err := expenseService.CreateExpense(dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.DueDate).ToNot(BeNil())
				Expect(*result.DueDate).To(Equal(due))
			})
		})

		It("should reject an unknown kind", func() {
			dto := expense.CreateExpenseDTO{
				Name:        "Mystery",
				Category:    "other",
				AmountCents: 100_00,
				Kind:        "recurring",
				PaidBy:      "person1",
			}

			_, err := expenseService.CreateExpense(dto)

			Expect(err).To(HaveOccurred())
		})

		It("should reject an unknown payer tag", func() {
			dto := expense.CreateExpenseDTO{
				Name:        "Rent",
				Category:    "housing",
				AmountCents: 1500_00,
				Kind:        string(expense.KindFixed),
				PaidBy:      "somebody",
			}

			_, err := expenseService.CreateExpense(dto)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("DeleteExpense", func() {
		It("should remove the expense and its installments", func() {
			count := 3
			firstDue := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
			created, err := expenseService.CreateExpense(expense.CreateExpenseDTO{
				Name:              "Sofa",
				Category:          "household",
				AmountCents:       900_00,
				Kind:              string(expense.KindInstallment),
				PaidBy:            "joint",
				TotalInstallments: &count,
				FirstDueDate:      &firstDue,
			})
			Expect(err).ToNot(HaveOccurred())

			Expect(expenseService.DeleteExpense(created.ID)).To(Succeed())
			Expect(mockRepo.expenses).To(BeEmpty())
			Expect(mockRepo.installments).To(BeEmpty())
		})

		It("should report a missing expense", func() {
			err := expenseService.DeleteExpense("nope")
			Expect(err).To(Equal(errors.ErrExpenseNotFound))
		})
	})

	Describe("SetInstallmentStatus", func() {
		var installmentID string

		BeforeEach(func() {
			count := 2
			firstDue := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
			created, err := expenseService.CreateExpense(expense.CreateExpenseDTO{
				Name:              "Phone",
				Category:          "electronics",
				AmountCents:       800_00,
				Kind:              string(expense.KindInstallment),
				PaidBy:            "person1",
				TotalInstallments: &count,
				FirstDueDate:      &firstDue,
			})
			Expect(err).ToNot(HaveOccurred())
			installmentID = created.Installments[0].ID
		})

		It("should mark an installment paid and stamp paid_at", func() {
			inst, err := expenseService.SetInstallmentStatus(installmentID,
				expense.UpdateInstallmentStatusDTO{Status: expense.StatusPaid})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Status).To(Equal(expense.StatusPaid))
			Expect(inst.PaidAt).ToNot(BeNil())
		})

		It("should clear paid_at when reverting to pending", func() {
			_, err := expenseService.SetInstallmentStatus(installmentID,
				expense.UpdateInstallmentStatusDTO{Status: expense.StatusPaid})
			Expect(err).ToNot(HaveOccurred())

			inst, err := expenseService.SetInstallmentStatus(installmentID,
				expense.UpdateInstallmentStatusDTO{Status: expense.StatusPending})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Status).To(Equal(expense.StatusPending))
			Expect(inst.PaidAt).To(BeNil())
		})

		It("should reject an unknown status", func() {
			_, err := expenseService.SetInstallmentStatus(installmentID,
				expense.UpdateInstallmentStatusDTO{Status: "settled"})

			Expect(err).To(HaveOccurred())
		})

		It("should report a missing installment", func() {
			_, err := expenseService.SetInstallmentStatus("nope",
				expense.UpdateInstallmentStatusDTO{Status: expense.StatusPaid})

			Expect(err).To(Equal(errors.ErrInstallmentNotFound))
		})
	})

	Describe("UpdateExpense", func() {
		It("should apply partial updates", func() {
			created, err := expenseService.CreateExpense(expense.CreateExpenseDTO{
				Name:        "Rent",
				Category:    "housing",
				AmountCents: 1500_00,
				Kind:        string(expense.KindFixed),
				PaidBy:      "joint",
			})
			Expect(err).ToNot(HaveOccurred())

			newAmount := int64(1600_00)
			updated, err := expenseService.UpdateExpense(created.ID,
				expense.UpdateExpenseDTO{AmountCents: &newAmount})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Amount).To(Equal(money.Cents(1600_00)))
			Expect(updated.Name).To(Equal("Rent"))
		})
	})
})
