package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-gateway/internal/client/changefeed"
	"github.com/s21platform/chat-gateway/internal/model"
	"github.com/s21platform/chat-gateway/internal/notify"
	"github.com/s21platform/chat-gateway/internal/store"
)

// Repo is the slice of the store repository the session needs.
type Repo interface {
	GetRecentMessages(ctx context.Context, roomID string) (model.MessageList, error)
	GetRoomByID(ctx context.Context, roomID string) (*model.Room, error)
	GetRoomParticipants(ctx context.Context, roomID string) (model.ParticipantList, error)
	GetNotificationSettings(ctx context.Context, userID string) ([]model.NotificationSetting, error)
	UpsertNotificationSetting(ctx context.Context, roomID, userID string, enabled bool) error
}

// Subscription is a live feed handle owned by the session's lifecycle.
type Subscription interface {
	Unsubscribe()
}

// Feed opens row-level insert subscriptions on the hosted store.
type Feed interface {
	Subscribe(table string, filter *changefeed.Filter, onInsert changefeed.InsertHandler) (Subscription, error)
}

// EventSink delivers pushed state to the connected UI.
type EventSink interface {
	PushMessage(message model.Message)
	PushAlert(alert model.Alert)
	PushRoomClosed(roomID string)
}

type feedAdapter struct {
	client *changefeed.Client
}

func (f feedAdapter) Subscribe(table string, filter *changefeed.Filter, onInsert changefeed.InsertHandler) (Subscription, error) {
	sub, err := f.client.Subscribe(table, filter, onInsert)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// NewFeed adapts the changefeed client to the session's Feed interface.
func NewFeed(client *changefeed.Client) Feed {
	return feedAdapter{client: client}
}

// Session is the explicit application-state object: the authenticated user,
// the open room, the room's message log and roster, notification
// preferences, and the subscription lifecycle. Transitions (Login, Logout,
// EnterRoom, LeaveRoom) are serialized; no two run concurrently.
type Session struct {
	repo   Repo
	feed   Feed
	sink   EventSink
	logger logger_lib.LoggerInterface

	lifecycle *Lifecycle
	roomLog   *store.RoomLog
	router    *notify.Router

	transitionMu sync.Mutex

	mu            sync.Mutex
	user          *model.User
	currentRoomID string
	participants  model.ParticipantList
	prefs         map[string]bool
}

func New(repo Repo, feed Feed, sink EventSink, logger logger_lib.LoggerInterface) *Session {
	s := &Session{
		repo:      repo,
		feed:      feed,
		sink:      sink,
		logger:    logger,
		lifecycle: NewLifecycle(),
		roomLog:   store.NewRoomLog(repo),
		prefs:     make(map[string]bool),
	}
	s.router = notify.NewRouter(repo, s, sink)
	return s
}

// Login binds the session to user, loads their notification preferences and
// opens the all-rooms listener.
func (s *Session) Login(ctx context.Context, user *model.User) error {
	s.transitionMu.Lock()
	defer s.transitionMu.Unlock()

	settings, err := s.repo.GetNotificationSettings(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to load notification settings: %w", err)
	}

	prefs := make(map[string]bool, len(settings))
	for _, setting := range settings {
		prefs[setting.RoomID] = setting.Enabled
	}

	s.mu.Lock()
	s.user = user
	s.prefs = prefs
	s.mu.Unlock()

	s.lifecycle.Begin(ContextGlobal)
	sub, err := s.feed.Subscribe(model.TableMessages, nil, s.onGlobalInsert)
	if err != nil {
		s.lifecycle.Close(ContextGlobal)
		return fmt.Errorf("failed to open all-rooms subscription: %w", err)
	}
	s.lifecycle.Open(ContextGlobal, sub.Unsubscribe)

	return nil
}

// Logout tears down every subscription and clears all session state.
func (s *Session) Logout() {
	s.transitionMu.Lock()
	defer s.transitionMu.Unlock()

	s.lifecycle.Close(ContextRoom)
	s.lifecycle.Close(ContextGlobal)
	s.roomLog.Clear()

	s.mu.Lock()
	s.user = nil
	s.currentRoomID = ""
	s.participants = nil
	s.prefs = make(map[string]bool)
	s.mu.Unlock()
}

// EnterRoom makes roomID the open room: the previous room subscription is
// torn down, the roster and recent history are loaded, and only then does
// the room-scoped subscription open. A failed history load is returned as a
// non-fatal warning; the room stays usable and live events still arrive.
// Messages sent between load completion and subscription start can be
// missed (known limitation of load-then-subscribe).
func (s *Session) EnterRoom(ctx context.Context, roomID string) (model.MessageList, error) {
	s.transitionMu.Lock()
	defer s.transitionMu.Unlock()

	s.lifecycle.Close(ContextRoom)

	s.mu.Lock()
	s.currentRoomID = roomID
	s.mu.Unlock()

	participants, err := s.repo.GetRoomParticipants(ctx, roomID)
	if err != nil {
		s.logger.Error(fmt.Sprintf("failed to load participants for room %s: %v", roomID, err))
	} else {
		s.mu.Lock()
		s.participants = participants
		s.mu.Unlock()
	}

	s.lifecycle.Begin(ContextRoom)

	messages, loadErr := s.roomLog.LoadInitial(ctx, roomID)

	sub, err := s.feed.Subscribe(model.TableMessages, &changefeed.Filter{Column: "room_id", Equals: roomID}, s.onRoomInsert)
	if err != nil {
		s.lifecycle.Close(ContextRoom)
		return messages, fmt.Errorf("failed to open room subscription: %w", err)
	}
	s.lifecycle.Open(ContextRoom, sub.Unsubscribe)

	if loadErr != nil {
		return messages, fmt.Errorf("room history unavailable: %w", loadErr)
	}

	return messages, nil
}

// LeaveRoom closes the room subscription and empties the room log.
func (s *Session) LeaveRoom() {
	s.transitionMu.Lock()
	defer s.transitionMu.Unlock()

	s.lifecycle.Close(ContextRoom)
	s.roomLog.Clear()

	s.mu.Lock()
	s.currentRoomID = ""
	s.participants = nil
	s.mu.Unlock()
}

func (s *Session) onRoomInsert(event model.FeedEvent) {
	var message model.Message
	if err := json.Unmarshal(event.Row, &message); err != nil {
		s.logger.Error(fmt.Sprintf("failed to decode room insert event: %v", err))
		return
	}

	if s.roomLog.Append(message) {
		s.sink.PushMessage(message)
	}
}

func (s *Session) onGlobalInsert(event model.FeedEvent) {
	if event.Table != model.TableMessages {
		return
	}

	var message model.Message
	if err := json.Unmarshal(event.Row, &message); err != nil {
		s.logger.Error(fmt.Sprintf("failed to decode insert event: %v", err))
		return
	}

	s.router.HandleInsert(context.Background(), message)
}

// RoomClosed propagates a room deletion to the UI and, when it is the open
// room, resets the room context.
func (s *Session) RoomClosed(roomID string) {
	if s.CurrentRoomID() == roomID {
		s.LeaveRoom()
	}
	s.sink.PushRoomClosed(roomID)
}

// CurrentRoomID implements notify.SessionView.
func (s *Session) CurrentRoomID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentRoomID
}

// Nickname implements notify.SessionView; empty when logged out.
func (s *Session) Nickname() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return s.user.Nickname
}

// NotificationsEnabled implements notify.SessionView. Rooms without an
// explicit preference default to enabled.
func (s *Session) NotificationsEnabled(roomID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	enabled, ok := s.prefs[roomID]
	if !ok {
		return true
	}
	return enabled
}

// SetNotificationPreference persists the toggle and keeps the in-session
// copy in sync.
func (s *Session) SetNotificationPreference(ctx context.Context, roomID string, enabled bool) error {
	s.mu.Lock()
	user := s.user
	s.mu.Unlock()

	if user == nil {
		return fmt.Errorf("no authenticated user")
	}

	if err := s.repo.UpsertNotificationSetting(ctx, roomID, user.ID, enabled); err != nil {
		return fmt.Errorf("failed to persist notification preference: %w", err)
	}

	s.mu.Lock()
	s.prefs[roomID] = enabled
	s.mu.Unlock()

	return nil
}

// User returns the authenticated user, nil when logged out.
func (s *Session) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Participants returns the open room's roster snapshot.
func (s *Session) Participants() model.ParticipantList {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(model.ParticipantList, len(s.participants))
	copy(snapshot, s.participants)
	return snapshot
}

// RefreshParticipants re-reads the roster; mention validity is re-derived
// per render from this snapshot.
func (s *Session) RefreshParticipants(ctx context.Context) (model.ParticipantList, error) {
	roomID := s.CurrentRoomID()
	if roomID == "" {
		return nil, nil
	}

	participants, err := s.repo.GetRoomParticipants(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh participants: %w", err)
	}

	s.mu.Lock()
	s.participants = participants
	s.mu.Unlock()

	return participants, nil
}

// Messages returns the room log snapshot.
func (s *Session) Messages() model.MessageList {
	return s.roomLog.Messages()
}

// SubscriptionState exposes the lifecycle state for a context.
func (s *Session) SubscriptionState(key ContextKey) State {
	return s.lifecycle.State(key)
}

// VisibleAlerts returns the currently visible transient alerts.
func (s *Session) VisibleAlerts() []model.Alert {
	return s.router.Visible()
}
