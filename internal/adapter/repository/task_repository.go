package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saiydurnetcom/nexuspm/internal/domain/entities"
	"github.com/saiydurnetcom/nexuspm/internal/domain/repositories"
)

// taskRepository implements the TaskRepository interface
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &taskRepository{db: db}
}

// Create creates a new task
func (r *taskRepository) Create(ctx context.Context, task *entities.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindSummariesByProject retrieves title/description pairs for every task in
// the project, used as dedup context when generating suggestions
func (r *taskRepository) FindSummariesByProject(ctx context.Context, projectID uuid.UUID) ([]repositories.TaskSummary, error) {
	var summaries []repositories.TaskSummary
	err := r.db.WithContext(ctx).
		Model(&entities.Task{}).
		Select("title", "description").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Scan(&summaries).Error
	return summaries, err
}
