// internal/model/penalty.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Penalty struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	VehicleID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	UserID         *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	Amount         float64    `gorm:"not null" json:"amount"`
	Reason         string     `gorm:"type:text" json:"reason,omitempty"`
	IssuedAt       time.Time  `json:"issued_at"`
	Paid           bool       `gorm:"not null;default:false" json:"paid"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
