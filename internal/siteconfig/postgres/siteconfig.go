package postgres

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	errors "github.com/homeledger/homeledger/internal"
	siteconfigDatamodel "github.com/homeledger/homeledger/internal/core/datamodel/siteconfig"
	"github.com/homeledger/homeledger/internal/siteconfig"
)

// ConfigRepository implements the siteconfig.Repository interface using GORM.
type ConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) siteconfig.Repository {
	return &ConfigRepository{db: db}
}

func (r *ConfigRepository) GetAll() ([]*siteconfig.Entry, error) {
	var dms []*siteconfigDatamodel.Entry
	err := r.db.Order("category ASC, key ASC").Find(&dms).Error
	if err != nil {
		return nil, errors.NewBackendUnavailableError(err)
	}
	return siteconfig.FromDataModelSlice(dms), nil
}

func (r *ConfigRepository) GetByKey(key string) (*siteconfig.Entry, error) {
	var dm siteconfigDatamodel.Entry
	err := r.db.Where("key = ?", key).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrConfigKeyNotFound
		}
		return nil, errors.NewBackendUnavailableError(err)
	}
	return siteconfig.FromDataModel(&dm), nil
}

func (r *ConfigRepository) Update(entry *siteconfig.Entry) error {
	if err := r.db.Save(siteconfig.ToDataModel(entry)).Error; err != nil {
		return errors.NewBackendUnavailableError(err)
	}
	return nil
}

// Seed inserts entries, leaving keys that already exist untouched.
func (r *ConfigRepository) Seed(entries []*siteconfig.Entry) error {
	dms := make([]*siteconfigDatamodel.Entry, len(entries))
	for i, e := range entries {
		dms[i] = siteconfig.ToDataModel(e)
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&dms).Error
	if err != nil {
		return errors.NewBackendUnavailableError(err)
	}
	return nil
}
