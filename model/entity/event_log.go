package entity

import (
	"time"

	"gorm.io/datatypes"
)

// EventLog is an append-only audit row written for every successful mutation.
type EventLog struct {
	EntityID  uint           `gorm:"column:entity_id;primaryKey;autoIncrement"`
	Event     string         `gorm:"column:event;type:varchar(64);not null;index"`
	Payload   datatypes.JSON `gorm:"column:payload"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (EventLog) TableName() string {
	return "crm_event_log"
}
