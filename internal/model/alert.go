package model

import "time"

type AlertSeverity string

const (
	AlertSeverityNormal  AlertSeverity = "normal"
	AlertSeverityMention AlertSeverity = "mention"
)

// Alert is a transient, auto-dismissing cross-room notification.
type Alert struct {
	RoomID    string        `json:"room_id"`
	RoomName  string        `json:"room_name"`
	Title     string        `json:"title"`
	Body      string        `json:"body"`
	Severity  AlertSeverity `json:"severity"`
	ExpiresAt time.Time     `json:"expires_at"`
}
