package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saiydurnetcom/nexuspm/internal/domain/entities"
	"github.com/saiydurnetcom/nexuspm/internal/domain/repositories"
)

// suggestionRepository implements the SuggestionRepository interface
type suggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository creates a new suggestion repository
func NewSuggestionRepository(db *gorm.DB) repositories.SuggestionRepository {
	return &suggestionRepository{db: db}
}

// CreateBatch inserts all suggestions of one generation run together
func (r *suggestionRepository) CreateBatch(ctx context.Context, suggestions []*entities.Suggestion) error {
	if len(suggestions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(suggestions).Error
}

// FindByID retrieves a suggestion with its meeting preloaded
func (r *suggestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Suggestion, error) {
	var suggestion entities.Suggestion
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Where("id = ?", id).
		First(&suggestion).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &suggestion, nil
}

// FindByMeetingID retrieves all suggestions for a meeting, newest first
func (r *suggestionRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.Suggestion, error) {
	var suggestions []*entities.Suggestion
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		Find(&suggestions).Error
	return suggestions, err
}

// FindPendingByOwner retrieves pending suggestions across all meetings owned
// by the given user
func (r *suggestionRepository) FindPendingByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Suggestion, error) {
	var suggestions []*entities.Suggestion
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Joins("JOIN meetings ON meetings.id = task_suggestions.meeting_id").
		Where("meetings.created_by = ? AND task_suggestions.status = ?", ownerID, entities.SuggestionStatusPending).
		Order("task_suggestions.created_at DESC").
		Find(&suggestions).Error
	return suggestions, err
}

// Update persists the review state of an existing suggestion
func (r *suggestionRepository) Update(ctx context.Context, suggestion *entities.Suggestion) error {
	return r.db.WithContext(ctx).
		Model(&entities.Suggestion{}).
		Where("id = ?", suggestion.ID).
		Updates(map[string]interface{}{
			"status":           suggestion.Status,
			"reviewed_by":      suggestion.ReviewedBy,
			"reviewed_at":      suggestion.ReviewedAt,
			"rejection_reason": suggestion.RejectionReason,
		}).Error
}
