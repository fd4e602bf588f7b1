package model

import (
	"time"

	"github.com/lib/pq"
)

type MessageList []Message

// Message mirrors a row of the hosted store's messages table. Text is null
// for attachment-only messages; Mentions holds the nicknames persisted at
// send time, not a re-parse of the text.
type Message struct {
	ID        string         `db:"id" json:"id"`
	RoomID    string         `db:"room_id" json:"room_id"`
	UserName  string         `db:"user_name" json:"user_name"`
	Text      *string        `db:"text" json:"text,omitempty"`
	Mentions  pq.StringArray `db:"mentions" json:"mentions,omitempty"`
	FileURL   *string        `db:"file_url" json:"file_url,omitempty"`
	FileType  *string        `db:"file_type" json:"file_type,omitempty"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
)

// BodyText returns the message text, empty for attachment-only messages.
func (m *Message) BodyText() string {
	if m.Text == nil {
		return ""
	}
	return *m.Text
}

// MentionsNickname reports whether nickname is in the persisted mention list.
func (m *Message) MentionsNickname(nickname string) bool {
	for _, n := range m.Mentions {
		if n == nickname {
			return true
		}
	}
	return false
}
