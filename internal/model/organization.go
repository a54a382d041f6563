// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionSuspended SubscriptionStatus = "suspended"
)

// Organization is the tenant boundary. Every user and every business
// record belongs to exactly one organization.
type Organization struct {
	ID                    uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name                  string             `gorm:"type:text;not null" json:"name"`
	SubscriptionStatus    SubscriptionStatus `gorm:"type:text;not null;default:'active'" json:"subscription_status"`
	SubscriptionExpiresAt *time.Time         `json:"subscription_expires_at,omitempty"`
	// NotifyChannelID identifies the external messaging channel that
	// receives bug-report relays for this organization. Empty disables
	// the relay.
	NotifyChannelID string    `gorm:"type:text" json:"notify_channel_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Users []User `gorm:"foreignKey:OrganizationID" json:"-"`
}
