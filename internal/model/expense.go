// internal/model/expense.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	VehicleID      *uuid.UUID `gorm:"type:uuid" json:"vehicle_id,omitempty"`
	Category       string     `gorm:"type:text;not null" json:"category"`
	Amount         float64    `gorm:"not null" json:"amount"`
	Note           string     `gorm:"type:text" json:"note,omitempty"`
	IncurredAt     time.Time  `json:"incurred_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
