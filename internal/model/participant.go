package model

import "time"

const (
	RoleCreator = "creator"
	RoleMember  = "member"
)

type ParticipantList []Participant

// Participant is a join record; the store enforces one row per (room, user).
type Participant struct {
	ID       string    `db:"id" json:"id"`
	RoomID   string    `db:"room_id" json:"room_id"`
	UserID   string    `db:"user_id" json:"user_id"`
	Nickname string    `db:"nickname" json:"nickname"`
	Role     string    `db:"role" json:"role"`
	JoinedAt time.Time `db:"joined_at" json:"joined_at"`
}

// HasNickname reports whether some participant's nickname exactly equals
// nickname. Matching is case-sensitive.
func (l ParticipantList) HasNickname(nickname string) bool {
	for _, p := range l {
		if p.Nickname == nickname {
			return true
		}
	}
	return false
}
