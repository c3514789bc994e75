package postgres

import (
	"gorm.io/gorm"

	errors "github.com/homeledger/homeledger/internal"
	incomeDatamodel "github.com/homeledger/homeledger/internal/core/datamodel/income"
	"github.com/homeledger/homeledger/internal/income"
)

// IncomeRepository implements the income.Repository interface using GORM.
type IncomeRepository struct {
	db *gorm.DB
}

func NewIncomeRepository(db *gorm.DB) income.Repository {
	return &IncomeRepository{db: db}
}

func (r *IncomeRepository) Create(entry *income.IncomeEntry) error {
	if err := r.db.Create(income.ToDataModel(entry)).Error; err != nil {
		return errors.NewBackendUnavailableError(err)
	}
	return nil
}

func (r *IncomeRepository) GetByID(id string) (*income.IncomeEntry, error) {
	var entry incomeDatamodel.IncomeEntry
	err := r.db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrIncomeNotFound
		}
		return nil, errors.NewBackendUnavailableError(err)
	}
	return income.FromDataModel(&entry), nil
}

func (r *IncomeRepository) GetAll() ([]*income.IncomeEntry, error) {
	var entries []*incomeDatamodel.IncomeEntry
	err := r.db.Order("created_at DESC").Find(&entries).Error
	if err != nil {
		return nil, errors.NewBackendUnavailableError(err)
	}
	return income.FromDataModelSlice(entries), nil
}

func (r *IncomeRepository) Update(entry *income.IncomeEntry) error {
	if err := r.db.Save(income.ToDataModel(entry)).Error; err != nil {
		return errors.NewBackendUnavailableError(err)
	}
	return nil
}

func (r *IncomeRepository) Delete(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&incomeDatamodel.IncomeEntry{}).Error; err != nil {
		return errors.NewBackendUnavailableError(err)
	}
	return nil
}
