package entities

import (
	"time"

	"github.com/google/uuid"
)

// AISettings is the per-deployment override for the reasoning service. When
// present it takes precedence over the environment configuration. The API
// key is never serialized in responses.
type AISettings struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	APIURL      string    `gorm:"type:varchar(512)" json:"api_url"`
	APIKey      string    `gorm:"type:varchar(512)" json:"-"`
	Model       string    `gorm:"type:varchar(128)" json:"model"`
	Temperature float64   `gorm:"type:numeric(3,2);default:0.3" json:"temperature"`
	UpdatedBy   uuid.UUID `gorm:"type:uuid" json:"updated_by"`
	UpdatedAt   time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for AISettings
func (AISettings) TableName() string {
	return "ai_settings"
}
