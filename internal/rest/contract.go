//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"io"

	"github.com/s21platform/chat-gateway/internal/model"
	"github.com/s21platform/chat-gateway/internal/session"
)

type DBRepo interface {
	CreateUser(ctx context.Context, user *model.User) (string, error)
	GetUserByUserID(ctx context.Context, userID string) (*model.User, error)
	CreateRoom(ctx context.Context, room *model.Room) (string, error)
	GetRooms(ctx context.Context) (*model.RoomList, error)
	GetRoomByID(ctx context.Context, roomID string) (*model.Room, error)
	DeleteRoom(ctx context.Context, roomID string) error
	UpsertParticipant(ctx context.Context, participant *model.Participant) error
	GetRoomParticipants(ctx context.Context, roomID string) (model.ParticipantList, error)
	RemoveParticipant(ctx context.Context, roomID, userID string) error
	SaveMessage(ctx context.Context, message *model.Message) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

// SessionManager owns the live application state: the authenticated user,
// the open room, its log and roster, and the feed subscriptions.
type SessionManager interface {
	Login(ctx context.Context, user *model.User) error
	Logout()
	EnterRoom(ctx context.Context, roomID string) (model.MessageList, error)
	LeaveRoom()
	RoomClosed(roomID string)
	SetNotificationPreference(ctx context.Context, roomID string, enabled bool) error

	User() *model.User
	CurrentRoomID() string
	Participants() model.ParticipantList
	RefreshParticipants(ctx context.Context) (model.ParticipantList, error)
	Messages() model.MessageList
	NotificationsEnabled(roomID string) bool
	VisibleAlerts() []model.Alert
	SubscriptionState(key session.ContextKey) session.State
}

type StorageClient interface {
	ObjectPath(roomID, fileName string) string
	Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error)
}

type AIClient interface {
	GenerateReply(ctx context.Context, userMessage, roomName, roomID string) string
	Summarize(ctx context.Context, messages model.MessageList, roomName string) (string, error)
}

type Validator interface {
	ValidateRegister(req *RegisterRequest) error
	ValidateCreateRoom(req *CreateRoomRequest) error
	ValidateSendMessage(req *SendMessageRequest) error
}

type JWTGenerator interface {
	GenerateAccessToken(user *model.User) (string, int64, error)
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID, roomID string) (string, int64, error)
}

// SessionStore persists the authenticated user between restarts.
type SessionStore interface {
	Save(user *model.User) error
	Load() (*model.User, error)
	Clear() error
}
