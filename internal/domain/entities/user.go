package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents a user's role
type UserRole string

const (
	UserRoleMember UserRole = "member"
	UserRoleAdmin  UserRole = "admin"
)

// User is the minimal account record the suggestion pipeline needs for
// ownership checks and task assignment.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Role      UserRole  `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
