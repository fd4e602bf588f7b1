package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/s21platform/chat-gateway/internal/model"
)

// HistoryLoader is the slice of the repository the log needs.
type HistoryLoader interface {
	GetRecentMessages(ctx context.Context, roomID string) (model.MessageList, error)
}

// RoomLog is the in-memory ordered message sequence of the active room.
// Messages are kept in the order the store returned or delivered them:
// non-decreasing created_at, ties by arrival.
type RoomLog struct {
	loader HistoryLoader

	mu       sync.Mutex
	roomID   string
	messages model.MessageList
	seen     map[string]struct{}
}

func NewRoomLog(loader HistoryLoader) *RoomLog {
	return &RoomLog{
		loader: loader,
		seen:   make(map[string]struct{}),
	}
}

// LoadInitial fetches the room's recent history and replaces the sequence
// wholesale. On failure the previous contents stay untouched and the error
// is returned as a non-fatal warning for the caller to surface. A response
// for a room that is no longer active is discarded.
func (l *RoomLog) LoadInitial(ctx context.Context, roomID string) (model.MessageList, error) {
	l.mu.Lock()
	l.roomID = roomID
	l.mu.Unlock()

	messages, err := l.loader.GetRecentMessages(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load room history: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.roomID != roomID {
		// The user already moved on; applying would clobber the new room.
		return nil, nil
	}

	l.messages = messages
	l.seen = make(map[string]struct{}, len(messages))
	for _, m := range messages {
		l.seen[m.ID] = struct{}{}
	}

	return l.snapshotLocked(), nil
}

// Append adds one pushed message to the end of the sequence. Events
// redelivered by a flapping feed are dropped by message ID, and events for
// a room that is no longer active are ignored.
func (l *RoomLog) Append(message model.Message) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if message.RoomID != l.roomID {
		return false
	}
	if _, ok := l.seen[message.ID]; ok {
		return false
	}

	l.seen[message.ID] = struct{}{}
	l.messages = append(l.messages, message)
	return true
}

// Clear empties the sequence; called on leaving a room or logging out.
func (l *RoomLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.roomID = ""
	l.messages = nil
	l.seen = make(map[string]struct{})
}

// RoomID returns the room the log is currently scoped to.
func (l *RoomLog) RoomID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.roomID
}

// Messages returns a copy of the current sequence.
func (l *RoomLog) Messages() model.MessageList {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *RoomLog) snapshotLocked() model.MessageList {
	snapshot := make(model.MessageList, len(l.messages))
	copy(snapshot, l.messages)
	return snapshot
}
