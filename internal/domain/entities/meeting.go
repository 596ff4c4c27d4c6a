package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meeting holds the notes the suggestion pipeline reads. The pipeline never
// mutates meetings; meetings are owned by their creating user for access
// control.
type Meeting struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title"`
	Notes     string         `gorm:"type:text" json:"notes"`
	ProjectID *uuid.UUID     `gorm:"type:uuid;index" json:"project_id,omitempty"`
	Project   *Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	CreatedBy uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by"`
	Creator   *User          `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Metadata  datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// IsOwnedBy reports whether the given user created this meeting
func (m *Meeting) IsOwnedBy(userID uuid.UUID) bool {
	return m.CreatedBy == userID
}
