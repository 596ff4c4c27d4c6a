package suggestion

import (
	"time"

	"github.com/google/uuid"
)

// ApproveSuggestionRequest carries the optional overrides applied when a
// suggestion is converted into a task. Absent fields fall back to the
// suggestion's values, then to defaults.
type ApproveSuggestionRequest struct {
	ProjectID      *uuid.UUID `json:"project_id,omitempty"`
	Title          *string    `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description    *string    `json:"description,omitempty"`
	Priority       *string    `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty" validate:"omitempty,gt=0"`
	AssignedTo     *uuid.UUID `json:"assigned_to,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
}

// RejectSuggestionRequest carries the mandatory rejection reason
type RejectSuggestionRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=500"`
}

// UpdateAISettingsRequest replaces the deployment's reasoning-service
// configuration
type UpdateAISettingsRequest struct {
	APIURL      string  `json:"api_url" validate:"required,url"`
	APIKey      string  `json:"api_key" validate:"required,min=1"`
	Model       string  `json:"model" validate:"required,min=1,max=128"`
	Temperature float64 `json:"temperature" validate:"gte=0,lte=2"`
}
