package rest

import (
	"github.com/s21platform/chat-gateway/internal/model"
	"github.com/s21platform/chat-gateway/internal/store"
)

type Error struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type RegisterResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
}

type LoginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
	User      *model.User `json:"user"`
}

type RestoreSessionResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
	User      *model.User `json:"user"`
}

type CreateRoomRequest struct {
	Name      string `json:"name"`
	IsPrivate bool   `json:"is_private"`
}

type CreateRoomResponse struct {
	ID         string  `json:"id"`
	InviteCode *string `json:"invite_code,omitempty"`
}

type GetRoomsResponse struct {
	Rooms []model.Room `json:"rooms"`
}

type JoinRoomRequest struct {
	InviteCode string `json:"invite_code,omitempty"`
}

// DisplayedMessage is a stored message plus its render-time derivations: the
// parsed span list and the grouping flag. Both are recomputed per request,
// never persisted.
type DisplayedMessage struct {
	model.Message

	Spans      []model.Span `json:"spans,omitempty"`
	ShowHeader bool         `json:"show_header"`
}

type EnterRoomResponse struct {
	Room               *model.Room           `json:"room"`
	Participants       model.ParticipantList `json:"participants"`
	Messages           []DisplayedMessage    `json:"messages"`
	HistoryUnavailable bool                  `json:"history_unavailable,omitempty"`
}

type GetMessagesResponse struct {
	Messages []DisplayedMessage `json:"messages"`
}

type GetParticipantsResponse struct {
	Participants model.ParticipantList `json:"participants"`
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

type SendMessageResponse struct {
	MessageID string   `json:"message_id"`
	Mentions  []string `json:"mentions,omitempty"`
}

type UploadAttachmentResponse struct {
	MessageID string `json:"message_id"`
	FileURL   string `json:"file_url"`
	FileType  string `json:"file_type"`
}

type ToggleNotificationsRequest struct {
	Enabled bool `json:"enabled"`
}

type GetAlertsResponse struct {
	Alerts []model.Alert `json:"alerts"`
}

type SuggestReplyRequest struct {
	Message string `json:"message"`
}

type SuggestReplyResponse struct {
	Reply string `json:"reply"`
}

type SummarizeRoomResponse struct {
	Summary string `json:"summary"`
}

type GetConnectTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type GetSubscribeTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Channel   string `json:"channel"`
}

func displayedMessages(messages model.MessageList, participants model.ParticipantList) []DisplayedMessage {
	grouped := store.GroupForDisplay(messages)

	displayed := make([]DisplayedMessage, len(grouped))
	for i, dm := range grouped {
		displayed[i] = DisplayedMessage{
			Message:    dm.Message,
			ShowHeader: dm.ShowHeader,
		}
		if text := dm.Message.BodyText(); text != "" {
			displayed[i].Spans = parseSpans(text, participants)
		}
	}
	return displayed
}
