package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task is a persisted unit of work. Tasks created from approved suggestions
// keep a backlink to the originating meeting.
type Task struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProjectID      *uuid.UUID     `gorm:"type:uuid;index" json:"project_id,omitempty"`
	MeetingID      *uuid.UUID     `gorm:"type:uuid;index" json:"meeting_id,omitempty"`
	Title          string         `gorm:"type:varchar(255);not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	Priority       TaskPriority   `gorm:"type:varchar(10);not null;default:'MEDIUM'" json:"priority"`
	Status         TaskStatus     `gorm:"type:varchar(20);not null;default:'todo';index" json:"status"`
	EstimatedHours float64        `gorm:"type:numeric(6,2);default:1" json:"estimated_hours"`
	AssignedTo     uuid.UUID      `gorm:"type:uuid;index" json:"assigned_to"`
	CreatedBy      uuid.UUID      `gorm:"type:uuid;not null" json:"created_by"`
	DueDate        *time.Time     `json:"due_date,omitempty"`
	Tags           datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"tags,omitempty"`
	CreatedAt      time.Time      `gorm:"default:now()" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// IsValidPriority reports whether p is one of the supported priorities
func IsValidPriority(p TaskPriority) bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}
