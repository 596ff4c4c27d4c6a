package entities

import (
	"time"

	"github.com/google/uuid"
)

// SuggestionStatus represents the review state of a task suggestion
type SuggestionStatus string

const (
	SuggestionStatusPending  SuggestionStatus = "pending"
	SuggestionStatusApproved SuggestionStatus = "approved"
	SuggestionStatusRejected SuggestionStatus = "rejected"
)

// Suggestion is one proposed task extracted from a meeting's notes. It is
// created only by the generation pipeline and transitions exactly once from
// pending to approved or rejected.
type Suggestion struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID            uuid.UUID        `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Meeting              *Meeting         `gorm:"foreignKey:MeetingID" json:"meeting,omitempty"`
	OriginalText         string           `gorm:"type:text;not null" json:"original_text"`
	SuggestedTask        string           `gorm:"type:varchar(255);not null" json:"suggested_task"`
	SuggestedDescription string           `gorm:"type:text" json:"suggested_description"`
	ConfidenceScore      float64          `gorm:"type:numeric(4,3);check:confidence_score >= 0 AND confidence_score <= 1" json:"confidence_score"`
	Status               SuggestionStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ReviewedBy           *uuid.UUID       `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt           *time.Time       `json:"reviewed_at,omitempty"`
	RejectionReason      *string          `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt            time.Time        `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for Suggestion
func (Suggestion) TableName() string {
	return "task_suggestions"
}

// IsPending reports whether the suggestion is still awaiting review
func (s *Suggestion) IsPending() bool {
	return s.Status == SuggestionStatusPending
}

// Approve marks the suggestion as approved by the given reviewer
func (s *Suggestion) Approve(reviewerID uuid.UUID, at time.Time) {
	s.Status = SuggestionStatusApproved
	s.ReviewedBy = &reviewerID
	s.ReviewedAt = &at
}

// Reject marks the suggestion as rejected with the given reason
func (s *Suggestion) Reject(reviewerID uuid.UUID, reason string, at time.Time) {
	s.Status = SuggestionStatusRejected
	s.ReviewedBy = &reviewerID
	s.ReviewedAt = &at
	s.RejectionReason = &reason
}
