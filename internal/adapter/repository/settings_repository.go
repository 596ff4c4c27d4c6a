package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/saiydurnetcom/nexuspm/internal/domain/entities"
	"github.com/saiydurnetcom/nexuspm/internal/domain/repositories"
)

// settingsRepository implements the SettingsRepository interface
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new AI settings repository
func NewSettingsRepository(db *gorm.DB) repositories.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the most recently updated settings record, or nil when none
// exists
func (r *settingsRepository) Get(ctx context.Context) (*entities.AISettings, error) {
	var settings entities.AISettings
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		First(&settings).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Upsert replaces the settings record. The table holds a single active row;
// older rows are removed in the same transaction.
func (r *settingsRepository) Upsert(ctx context.Context, settings *entities.AISettings) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.AISettings{}).Error; err != nil {
			return err
		}
		return tx.Create(settings).Error
	})
}
