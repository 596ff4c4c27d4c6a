package suggestion

import (
	"time"

	"github.com/google/uuid"

	"github.com/saiydurnetcom/nexuspm/internal/domain/entities"
)

// MeetingSummary is the slim meeting projection embedded in suggestion
// responses
type MeetingSummary struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
}

// SuggestionResponse is the API shape of a task suggestion
type SuggestionResponse struct {
	ID                   uuid.UUID       `json:"id"`
	MeetingID            uuid.UUID       `json:"meeting_id"`
	Meeting              *MeetingSummary `json:"meeting,omitempty"`
	OriginalText         string          `json:"original_text"`
	SuggestedTask        string          `json:"suggested_task"`
	SuggestedDescription string          `json:"suggested_description,omitempty"`
	ConfidenceScore      float64         `json:"confidence_score"`
	Status               string          `json:"status"`
	ReviewedBy           *uuid.UUID      `json:"reviewed_by,omitempty"`
	ReviewedAt           *time.Time      `json:"reviewed_at,omitempty"`
	RejectionReason      *string         `json:"rejection_reason,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}

// TaskResponse is the API shape of the task created from an approved
// suggestion
type TaskResponse struct {
	ID             uuid.UUID  `json:"id"`
	ProjectID      *uuid.UUID `json:"project_id,omitempty"`
	MeetingID      *uuid.UUID `json:"meeting_id,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	EstimatedHours float64    `json:"estimated_hours"`
	AssignedTo     uuid.UUID  `json:"assigned_to"`
	CreatedBy      uuid.UUID  `json:"created_by"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// AISettingsResponse is the API shape of the settings record. The API key is
// intentionally absent.
type AISettingsResponse struct {
	ID          uuid.UUID `json:"id"`
	APIURL      string    `json:"api_url"`
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	UpdatedBy   uuid.UUID `json:"updated_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromEntity converts a suggestion entity to its response shape
func FromEntity(s *entities.Suggestion) *SuggestionResponse {
	resp := &SuggestionResponse{
		ID:                   s.ID,
		MeetingID:            s.MeetingID,
		OriginalText:         s.OriginalText,
		SuggestedTask:        s.SuggestedTask,
		SuggestedDescription: s.SuggestedDescription,
		ConfidenceScore:      s.ConfidenceScore,
		Status:               string(s.Status),
		ReviewedBy:           s.ReviewedBy,
		ReviewedAt:           s.ReviewedAt,
		RejectionReason:      s.RejectionReason,
		CreatedAt:            s.CreatedAt,
	}
	if s.Meeting != nil {
		resp.Meeting = &MeetingSummary{
			ID:        s.Meeting.ID,
			Title:     s.Meeting.Title,
			ProjectID: s.Meeting.ProjectID,
		}
	}
	return resp
}

// FromEntities converts a suggestion slice to response shapes
func FromEntities(suggestions []*entities.Suggestion) []*SuggestionResponse {
	out := make([]*SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, FromEntity(s))
	}
	return out
}

// TaskFromEntity converts a task entity to its response shape
func TaskFromEntity(t *entities.Task) *TaskResponse {
	return &TaskResponse{
		ID:             t.ID,
		ProjectID:      t.ProjectID,
		MeetingID:      t.MeetingID,
		Title:          t.Title,
		Description:    t.Description,
		Priority:       string(t.Priority),
		Status:         string(t.Status),
		EstimatedHours: t.EstimatedHours,
		AssignedTo:     t.AssignedTo,
		CreatedBy:      t.CreatedBy,
		DueDate:        t.DueDate,
		CreatedAt:      t.CreatedAt,
	}
}

// SettingsFromEntity converts a settings entity to its response shape
func SettingsFromEntity(s *entities.AISettings) *AISettingsResponse {
	return &AISettingsResponse{
		ID:          s.ID,
		APIURL:      s.APIURL,
		Model:       s.Model,
		Temperature: s.Temperature,
		UpdatedBy:   s.UpdatedBy,
		UpdatedAt:   s.UpdatedAt,
	}
}
