// internal/model/vehicle.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type VehicleStatus string

const (
	VehicleActive      VehicleStatus = "active"
	VehicleInService   VehicleStatus = "in_service"
	VehicleRented      VehicleStatus = "rented"
	VehicleDecommissioned VehicleStatus = "decommissioned"
)

type Vehicle struct {
	ID             uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID     `gorm:"type:uuid;not null;index" json:"organization_id"`
	Plate          string        `gorm:"type:text;not null" json:"plate"`
	Make           string        `gorm:"type:text" json:"make,omitempty"`
	Model          string        `gorm:"type:text" json:"model,omitempty"`
	Year           int           `json:"year,omitempty"`
	Mileage        int           `json:"mileage"`
	Status         VehicleStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	TeamID         *uuid.UUID    `gorm:"type:uuid" json:"team_id,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
