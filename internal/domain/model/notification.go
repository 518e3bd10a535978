package model

import "time"

type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
	LevelInfo    NotificationLevel = "info"
)

// Notification is the user-facing outcome of one controller action.
type Notification struct {
	ID       string            `json:"id"`
	Level    NotificationLevel `json:"level"`
	Title    string            `json:"title"`
	Message  string            `json:"message"`
	Entity   string            `json:"entity"`
	Action   string            `json:"action"`
	EntityID int64             `json:"entity_id,omitempty"`
	At       time.Time         `json:"at"`
}
