// internal/model/action_log.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ActionLog records sensitive mutations and authorization denials:
// who did what, in which organization, and whether it was allowed.
type ActionLog struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index"`
	ActorID        *uuid.UUID `json:"actor_id" gorm:"type:uuid"`
	ActorRole      Role       `json:"actor_role" gorm:"type:text"`
	Action         string     `json:"action" gorm:"type:text;not null"`
	EntityType     string     `json:"entity_type" gorm:"type:text"`
	EntityID       string     `json:"entity_id" gorm:"type:text"`
	Allowed        bool       `json:"allowed"`
	Context        JSONMap    `json:"context" gorm:"type:jsonb"`
	RequestID      string     `json:"request_id" gorm:"type:text"`
	ClientIP       string     `json:"client_ip" gorm:"type:text"`
	CreatedAt      time.Time  `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for ActionLog
func (ActionLog) TableName() string {
	return "action_logs"
}

// Constants for ActionLog action types
const (
	ActionAccessDenied = "access_denied"
	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionExport       = "export"
)

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}
