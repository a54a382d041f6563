// internal/model/team.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Members []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

// TeamMember is a person assigned to a team who is not necessarily a
// platform user (drivers and crew without logins).
type TeamMember struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	TeamID         uuid.UUID `gorm:"type:uuid;not null;index" json:"team_id"`
	FirstName      string    `gorm:"type:text;not null" json:"first_name"`
	LastName       string    `gorm:"type:text" json:"last_name"`
	Phone          string    `gorm:"type:text" json:"phone,omitempty"`
	Position       string    `gorm:"type:text" json:"position,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
