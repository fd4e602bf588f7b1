package model

import "time"

type RoomList []Room

type Room struct {
	ID              string    `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	CreatorID       string    `db:"creator_id" json:"creator_id"`
	CreatorNickname string    `db:"creator_nickname" json:"creator_nickname"`
	IsPrivate       bool      `db:"is_private" json:"is_private"`
	InviteCode      *string   `db:"invite_code" json:"-"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// NotificationSetting is the per-(room, user) alert preference. Absence of a
// row means notifications are enabled.
type NotificationSetting struct {
	RoomID    string    `db:"room_id"`
	UserID    string    `db:"user_id"`
	Enabled   bool      `db:"notifications_enabled"`
	UpdatedAt time.Time `db:"updated_at"`
}
