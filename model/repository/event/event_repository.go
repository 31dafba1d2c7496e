package event

import (
	"encoding/json"
	"sync"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	entity "crm.GO/model/entity"
)

type EventRepository struct {
	db *gorm.DB
}

var (
	mu        sync.Mutex
	instances = map[*gorm.DB]*EventRepository{}
)

// GetEventRepository returns a per-DB singleton.
func GetEventRepository(db *gorm.DB) *EventRepository {
	mu.Lock()
	defer mu.Unlock()
	if r, ok := instances[db]; ok {
		return r
	}
	r := NewEventRepository(db)
	instances[db] = r
	return r
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Log appends an audit row. Payload is marshalled to JSON; logging must not
// fail the mutation that triggered it, so callers may ignore the error.
func (r *EventRepository) Log(eventName string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return r.db.Create(&entity.EventLog{
		Event:   eventName,
		Payload: datatypes.JSON(data),
	}).Error
}

// Recent returns the latest n events, newest first.
func (r *EventRepository) Recent(n int) ([]entity.EventLog, error) {
	var events []entity.EventLog
	err := r.db.Order("entity_id DESC").Limit(n).Find(&events).Error
	return events, err
}
