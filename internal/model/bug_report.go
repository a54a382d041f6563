// internal/model/bug_report.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type BugReport struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Subject        string    `gorm:"type:text;not null" json:"subject"`
	Body           string    `gorm:"type:text;not null" json:"body"`
	// Relayed is set once the report has been delivered to the
	// organization's external messaging channel.
	Relayed   bool      `gorm:"not null;default:false" json:"relayed"`
	CreatedAt time.Time `json:"created_at"`
}
