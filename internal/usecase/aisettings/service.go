package aisettings

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saiydurnetcom/nexuspm/internal/domain/entities"
	"github.com/saiydurnetcom/nexuspm/internal/domain/repositories"
	"github.com/saiydurnetcom/nexuspm/internal/infrastructure/cache"
	"github.com/saiydurnetcom/nexuspm/pkg/ai"
)

const (
	settingsCacheKey = "ai:settings"
	// DefaultTTL bounds how stale a cached settings record may be. Settings
	// changes are rare and eventual propagation within a minute is
	// acceptable.
	DefaultTTL = time.Minute
)

// Service is the read-through cache over the per-deployment AI settings
// record. It implements ai.SettingsProvider for the oracle client. The cache
// store is injected so tests can substitute a zero-TTL or pre-seeded one.
type Service struct {
	repo   repositories.SettingsRepository
	store  cache.Store
	ttl    time.Duration
	logger *zap.Logger
}

// UpdateInput carries the fields of a settings upsert
type UpdateInput struct {
	APIURL      string
	APIKey      string
	Model       string
	Temperature float64
}

// NewService creates a settings service. logger may be nil.
func NewService(repo repositories.SettingsRepository, store cache.Store, ttl time.Duration, logger *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{repo: repo, store: store, ttl: ttl, logger: logger}
}

// cachedSettings is the wire form stored in the cache. A present record with
// Exists=false caches the absence of a settings row, so an unconfigured
// deployment does not query the database on every generation.
type cachedSettings struct {
	Exists      bool    `json:"exists"`
	APIURL      string  `json:"api_url"`
	APIKey      string  `json:"api_key"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
}

// AISettings resolves the settings record, serving from cache within the TTL
// window. A nil result without error means no record exists and environment
// configuration applies.
func (s *Service) AISettings(ctx context.Context) (*ai.Settings, error) {
	if raw, ok := s.store.Get(ctx, settingsCacheKey); ok {
		var cached cachedSettings
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			if !cached.Exists {
				return nil, nil
			}
			return &ai.Settings{
				APIURL:      cached.APIURL,
				APIKey:      cached.APIKey,
				Model:       cached.Model,
				Temperature: cached.Temperature,
			}, nil
		}
	}

	record, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	cached := cachedSettings{Exists: record != nil}
	var result *ai.Settings
	if record != nil {
		cached.APIURL = record.APIURL
		cached.APIKey = record.APIKey
		cached.Model = record.Model
		cached.Temperature = record.Temperature
		result = &ai.Settings{
			APIURL:      record.APIURL,
			APIKey:      record.APIKey,
			Model:       record.Model,
			Temperature: record.Temperature,
		}
	}

	if data, err := json.Marshal(cached); err == nil {
		s.store.Set(ctx, settingsCacheKey, string(data), s.ttl)
	}

	return result, nil
}

// Update upserts the settings record and invalidates the cache so the next
// generation call sees the new values.
func (s *Service) Update(ctx context.Context, updatedBy uuid.UUID, input UpdateInput) (*entities.AISettings, error) {
	record := &entities.AISettings{
		APIURL:      input.APIURL,
		APIKey:      input.APIKey,
		Model:       input.Model,
		Temperature: input.Temperature,
		UpdatedBy:   updatedBy,
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	s.Invalidate(ctx)

	if s.logger != nil {
		s.logger.Info("ai settings updated",
			zap.String("updated_by", updatedBy.String()),
			zap.String("model", input.Model),
		)
	}
	return record, nil
}

// Invalidate drops the cached settings record
func (s *Service) Invalidate(ctx context.Context) {
	s.store.Delete(ctx, settingsCacheKey)
}
