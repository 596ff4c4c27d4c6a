package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/saiydurnetcom/nexuspm/internal/domain/entities"
)

// TaskSummary is the slim projection of a task used as dedup context for
// suggestion generation.
type TaskSummary struct {
	Title       string
	Description string
}

// TaskRepository defines the task persistence the suggestion pipeline needs:
// creating tasks from approved suggestions and listing a project's tasks as
// dedup context.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error

	// FindSummariesByProject returns title/description pairs for every task
	// in the project
	FindSummariesByProject(ctx context.Context, projectID uuid.UUID) ([]TaskSummary, error)
}
