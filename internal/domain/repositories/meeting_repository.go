package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/saiydurnetcom/nexuspm/internal/domain/entities"
)

// MeetingRepository defines read access to meetings. The suggestion pipeline
// never writes meetings.
type MeetingRepository interface {
	// FindByID returns the meeting or nil when it does not exist
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)
}
