package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/s21platform/chat-gateway/internal/model"
)

//go:generate mockgen -destination=mock_router_test.go -package=notify -source=router.go

// RoomNamer resolves a room's display name against the hosted store.
type RoomNamer interface {
	GetRoomByID(ctx context.Context, roomID string) (*model.Room, error)
}

// SessionView is the slice of session state the router reads.
type SessionView interface {
	CurrentRoomID() string
	Nickname() string
	NotificationsEnabled(roomID string) bool
}

// Sink receives alerts that made it into the visible set.
type Sink interface {
	PushAlert(alert model.Alert)
}

// Router decides, for every message insert observed system-wide, whether to
// raise a transient alert.
type Router struct {
	rooms   RoomNamer
	session SessionView
	sink    Sink
	queue   *Queue
	now     func() time.Time
}

func NewRouter(rooms RoomNamer, session SessionView, sink Sink) *Router {
	return &Router{
		rooms:   rooms,
		session: session,
		sink:    sink,
		queue:   NewQueue(),
		now:     time.Now,
	}
}

// HandleInsert evaluates one system-wide insert event. Events for the open
// room are suppressed (already visible in-room); a mention of the current
// user overrides a disabled room preference and raises an elevated alert.
func (r *Router) HandleInsert(ctx context.Context, message model.Message) {
	if message.RoomID == r.session.CurrentRoomID() {
		return
	}

	room, err := r.rooms.GetRoomByID(ctx, message.RoomID)
	if err != nil {
		// Name lookup failures suppress silently; an alert without a room
		// name is worse than none.
		return
	}

	isMentioned := message.MentionsNickname(r.session.Nickname())
	enabled := r.session.NotificationsEnabled(message.RoomID)

	if !isMentioned && !enabled {
		return
	}

	alert := model.Alert{
		RoomID:   message.RoomID,
		RoomName: room.Name,
		Title:    room.Name,
		Body:     previewBody(&message),
		Severity: model.AlertSeverityNormal,
	}
	if isMentioned {
		alert.Severity = model.AlertSeverityMention
		alert.Body = "@ " + alert.Body
		alert.ExpiresAt = r.now().Add(mentionAlertTTL)
	} else {
		alert.ExpiresAt = r.now().Add(normalAlertTTL)
	}

	if r.queue.Push(alert) {
		r.sink.PushAlert(alert)
	}
}

// Visible exposes the current alert set for the UI to re-render.
func (r *Router) Visible() []model.Alert {
	return r.queue.Visible()
}

const previewLimit = 80

func previewBody(message *model.Message) string {
	text := message.BodyText()
	if text == "" && message.FileURL != nil {
		text = "sent an attachment"
	}

	preview := fmt.Sprintf("%s: %s", message.UserName, text)
	runes := []rune(preview)
	if len(runes) > previewLimit {
		preview = string(runes[:previewLimit]) + "…"
	}
	return preview
}
