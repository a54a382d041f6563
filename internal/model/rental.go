// internal/model/rental.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type RentalStatus string

const (
	RentalActive    RentalStatus = "active"
	RentalCompleted RentalStatus = "completed"
	RentalCancelled RentalStatus = "cancelled"
)

type RentalContract struct {
	ID             uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID    `gorm:"type:uuid;not null;index" json:"organization_id"`
	VehicleID      uuid.UUID    `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	Renter         string       `gorm:"type:text;not null" json:"renter"`
	DailyRate      float64      `json:"daily_rate"`
	StartsAt       time.Time    `json:"starts_at"`
	EndsAt         *time.Time   `json:"ends_at,omitempty"`
	Status         RentalStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
