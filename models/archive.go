package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// SnapshotArchive is one backup of the in-memory collections.
type SnapshotArchive struct {
	ID            string    `gorm:"type:varchar(40);primaryKey"`
	TakenAt       time.Time `gorm:"index;not null"`
	Trigger       string    `gorm:"type:varchar(20)"` // schedule, manual
	CustomerCount int
	OrderCount    int
	Customers     JSONB `gorm:"type:jsonb"`
	Orders        JSONB `gorm:"type:jsonb"`
	Settings      JSONB `gorm:"type:jsonb"`
}

// JSONB stores an arbitrary JSON document in a jsonb column.
type JSONB json.RawMessage

func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return []byte(j), nil
}

func (j *JSONB) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = JSONB(v)
	case nil:
		*j = nil
	default:
		return errors.New("type assertion to []byte failed")
	}
	return nil
}

// NewJSONB marshals v into a JSONB value.
func NewJSONB(v interface{}) (JSONB, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return JSONB(b), nil
}
