package repositories

import (
	"context"

	"github.com/saiydurnetcom/nexuspm/internal/domain/entities"
)

// SettingsRepository defines persistence for the per-deployment AI settings
// record. At most one record is active.
type SettingsRepository interface {
	// Get returns the current settings record or nil when none exists
	Get(ctx context.Context) (*entities.AISettings, error)

	// Upsert creates or replaces the settings record
	Upsert(ctx context.Context, settings *entities.AISettings) error
}
