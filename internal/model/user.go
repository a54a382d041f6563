// internal/model/user.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a credential holder within one organization. Email is unique
// across all organizations, not just within one.
type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	Email          string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	PasswordHash   string     `gorm:"type:text;not null" json:"-"`
	FirstName      string     `gorm:"type:text;not null" json:"first_name"`
	LastName       string     `gorm:"type:text" json:"last_name"`
	Phone          string     `gorm:"type:text" json:"phone,omitempty"`
	Role           Role       `gorm:"type:text;not null" json:"role"`
	TeamID         *uuid.UUID `gorm:"type:uuid" json:"team_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

// DisplayName is the greeting name shown after login.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
