package postgres

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	errors "github.com/homeledger/homeledger/internal"
	projectionDatamodel "github.com/homeledger/homeledger/internal/core/datamodel/projection"
	"github.com/homeledger/homeledger/internal/projection"
)

// OverrideRepository implements the projection.OverrideRepository interface
// using GORM.
type OverrideRepository struct {
	db *gorm.DB
}

func NewOverrideRepository(db *gorm.DB) projection.OverrideRepository {
	return &OverrideRepository{db: db}
}

// Upsert inserts the override or, when (year, month) already exists, updates
// the stored figures in place.
func (r *OverrideRepository) Upsert(override *projection.Override) error {
	dm := projection.OverrideToDataModel(override)
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"income_cents", "expense_cents", "note", "updated_at",
		}),
	}).Create(dm).Error
	if err != nil {
		return errors.NewBackendUnavailableError(err)
	}
	return nil
}

func (r *OverrideRepository) GetAll() ([]*projection.Override, error) {
	var dms []*projectionDatamodel.Override
	err := r.db.Order("year ASC, month ASC").Find(&dms).Error
	if err != nil {
		return nil, errors.NewBackendUnavailableError(err)
	}
	return projection.OverrideFromDataModelSlice(dms), nil
}

func (r *OverrideRepository) GetByMonth(year, month int) (*projection.Override, error) {
	var dm projectionDatamodel.Override
	err := r.db.Where("year = ? AND month = ?", year, month).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOverrideNotFound
		}
		return nil, errors.NewBackendUnavailableError(err)
	}
	return projection.OverrideFromDataModel(&dm), nil
}

func (r *OverrideRepository) Delete(year, month int) error {
	err := r.db.Where("year = ? AND month = ?", year, month).
		Delete(&projectionDatamodel.Override{}).Error
	if err != nil {
		return errors.NewBackendUnavailableError(err)
	}
	return nil
}
