package postgres

import (
	"gorm.io/gorm"

	errors "github.com/homeledger/homeledger/internal"
	expenseDatamodel "github.com/homeledger/homeledger/internal/core/datamodel/expense"
	"github.com/homeledger/homeledger/internal/expense"
)

// ExpenseRepository implements the expense.Repository interface using GORM.
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &ExpenseRepository{db: db}
}

// Create persists the expense and its installment schedule in one
// transaction, so a failed installment insert never leaves a bare expense
// behind.
func (r *ExpenseRepository) Create(exp *expense.Expense) error {
	dm := expense.ToDataModel(exp)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		installments := dm.Installments
		dm.Installments = nil
		if err := tx.Create(dm).Error; err != nil {
			return err
		}
		if len(installments) > 0 {
			if err := tx.Create(&installments).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.NewBackendUnavailableError(err)
	}
	return nil
}

func (r *ExpenseRepository) GetByID(id string) (*expense.Expense, error) {
	var dm expenseDatamodel.Expense
	err := r.db.
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("installment_number ASC")
		}).
		Where("id = ?", id).
		First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrExpenseNotFound
		}
		return nil, errors.NewBackendUnavailableError(err)
	}
	return expense.FromDataModel(&dm), nil
}

func (r *ExpenseRepository) GetAll() ([]*expense.Expense, error) {
	var dms []*expenseDatamodel.Expense
	err := r.db.
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("installment_number ASC")
		}).
		Order("created_at DESC").
		Find(&dms).Error
	if err != nil {
		return nil, errors.NewBackendUnavailableError(err)
	}
	return expense.FromDataModelSlice(dms), nil
}

func (r *ExpenseRepository) Update(exp *expense.Expense) error {
	dm := expense.ToDataModel(exp)
	dm.Installments = nil
	if err := r.db.Save(dm).Error; err != nil {
		return errors.NewBackendUnavailableError(err)
	}
	return nil
}

// Delete removes the expense and relies on the ON DELETE CASCADE constraint
// to take the installments with it.
func (r *ExpenseRepository) Delete(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&expenseDatamodel.Expense{}).Error; err != nil {
		return errors.NewBackendUnavailableError(err)
	}
	return nil
}

func (r *ExpenseRepository) GetInstallment(id string) (*expense.Installment, error) {
	var dm expenseDatamodel.Installment
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrInstallmentNotFound
		}
		return nil, errors.NewBackendUnavailableError(err)
	}
	return expense.InstallmentFromDataModel(&dm), nil
}

func (r *ExpenseRepository) UpdateInstallment(inst *expense.Installment) error {
	if err := r.db.Save(expense.InstallmentToDataModel(inst)).Error; err != nil {
		return errors.NewBackendUnavailableError(err)
	}
	return nil
}
