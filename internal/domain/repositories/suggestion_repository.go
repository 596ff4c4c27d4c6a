package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/saiydurnetcom/nexuspm/internal/domain/entities"
)

// SuggestionRepository defines persistence for task suggestions
type SuggestionRepository interface {
	// CreateBatch inserts a generation batch in one transaction
	CreateBatch(ctx context.Context, suggestions []*entities.Suggestion) error

	// FindByID returns the suggestion with its meeting preloaded, or nil
	// when it does not exist
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Suggestion, error)

	// FindByMeetingID returns all suggestions for a meeting, newest first
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.Suggestion, error)

	// FindPendingByOwner returns pending suggestions across all meetings
	// created by the given user, newest first, with meetings preloaded
	FindPendingByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Suggestion, error)

	// Update persists review-state changes on an existing suggestion
	Update(ctx context.Context, suggestion *entities.Suggestion) error
}
