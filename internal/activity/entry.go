// Package activity keeps a journal of mutation outcomes for the recent
// activity feed.
package activity

import (
	"encoding/json"
	"time"

	"dealership-backoffice/internal/domain/model"

	"gorm.io/datatypes"
)

const (
	defaultLimit = 20
	maxLimit     = 200
)

type Entry struct {
	ID        string                  `json:"id" gorm:"primaryKey;size:36"`
	Level     model.NotificationLevel `json:"level" gorm:"size:16;index"`
	Entity    string                  `json:"entity" gorm:"size:64;index:idx_activity_entity"`
	EntityID  int64                   `json:"entity_id" gorm:"index:idx_activity_entity"`
	Action    string                  `json:"action" gorm:"size:32"`
	Message   string                  `json:"message" gorm:"size:512"`
	Payload   datatypes.JSON          `json:"payload"`
	CreatedAt time.Time               `json:"created_at" gorm:"index"`
}

func (Entry) TableName() string {
	return "activity_entries"
}

func EntryFromNotification(n model.Notification) (Entry, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return Entry{}, err
	}
	at := n.At
	if at.IsZero() {
		at = time.Now()
	}
	return Entry{
		ID:        n.ID,
		Level:     n.Level,
		Entity:    n.Entity,
		EntityID:  n.EntityID,
		Action:    n.Action,
		Message:   n.Message,
		Payload:   datatypes.JSON(payload),
		CreatedAt: at.UTC(),
	}, nil
}

// Query narrows the recent feed. Zero values mean no filter.
type Query struct {
	Entity   string
	EntityID int64
	Level    model.NotificationLevel
	Limit    int
}

func (q Query) limit() int {
	if q.Limit <= 0 {
		return defaultLimit
	}
	if q.Limit > maxLimit {
		return maxLimit
	}
	return q.Limit
}

func (q Query) matches(e Entry) bool {
	if q.Entity != "" && e.Entity != q.Entity {
		return false
	}
	if q.EntityID != 0 && e.EntityID != q.EntityID {
		return false
	}
	if q.Level != "" && e.Level != q.Level {
		return false
	}
	return true
}
