// internal/model/maintenance.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Maintenance struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	VehicleID      uuid.UUID `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	Cost           float64   `json:"cost"`
	PerformedAt    time.Time `json:"performed_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Materials []Material `gorm:"foreignKey:MaintenanceID" json:"materials,omitempty"`
}

// Material is a part or consumable used during a maintenance job.
type Material struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	MaintenanceID  uuid.UUID `gorm:"type:uuid;not null;index" json:"maintenance_id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Quantity       int       `gorm:"not null;default:1" json:"quantity"`
	UnitCost       float64   `json:"unit_cost"`
	CreatedAt      time.Time `json:"created_at"`
}
