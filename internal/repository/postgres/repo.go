package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/s21platform/chat-gateway/internal/config"
	"github.com/s21platform/chat-gateway/internal/model"
)

// recentMessagesCap bounds the initial bulk load of a room's history.
const recentMessagesCap = 100

type txKey int

const keyLiveTx txKey = iota

type Repository struct {
	connection *sqlx.DB
}

// dbHandle is satisfied by both *sqlx.DB and *sqlx.Tx.
type dbHandle interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// Chk returns the live transaction handle when the context carries one, the
// plain connection otherwise.
func (r *Repository) Chk(ctx context.Context) dbHandle {
	if liveTx, ok := ctx.Value(keyLiveTx).(*sqlx.Tx); ok {
		return liveTx
	}
	return r.connection
}

// WithTx runs cb inside a single transaction; repository calls made with
// cb's context join it via Chk.
func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	liveTx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, keyLiveTx, liveTx)); err != nil {
		_ = liveTx.Rollback()
		return err
	}

	if err := liveTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *Repository) CreateUser(ctx context.Context, user *model.User) (string, error) {
	query, args, err := sq.Insert("users").
		Columns("user_id", "password_hash", "nickname", "is_admin").
		Values(user.UserID, user.PasswordHash, user.Nickname, user.IsAdmin).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var id string
	err = r.Chk(ctx).GetContext(ctx, &id, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return "", model.NewAppError(model.CodeConflict, err)
		}
		return "", err
	}

	return id, nil
}

func (r *Repository) GetUserByUserID(ctx context.Context, userID string) (*model.User, error) {
	query, args, err := sq.Select("id", "user_id", "password_hash", "nickname", "is_admin").
		From("users").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.User
	err = r.Chk(ctx).GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.NewAppError(model.CodeNotFound, err)
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) CreateRoom(ctx context.Context, room *model.Room) (string, error) {
	query, args, err := sq.Insert("rooms").
		Columns("name", "creator_id", "creator_nickname", "is_private", "invite_code").
		Values(room.Name, room.CreatorID, room.CreatorNickname, room.IsPrivate, room.InviteCode).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var roomID string
	err = r.Chk(ctx).GetContext(ctx, &roomID, query, args...)
	if err != nil {
		return "", err
	}

	return roomID, nil
}

func (r *Repository) GetRooms(ctx context.Context) (*model.RoomList, error) {
	query, args, err := sq.Select("id", "name", "creator_id", "creator_nickname", "is_private", "invite_code", "created_at").
		From("rooms").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rooms model.RoomList
	err = r.Chk(ctx).SelectContext(ctx, &rooms, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %v", err)
	}

	return &rooms, nil
}

func (r *Repository) GetRoomByID(ctx context.Context, roomID string) (*model.Room, error) {
	query, args, err := sq.Select("id", "name", "creator_id", "creator_nickname", "is_private", "invite_code", "created_at").
		From("rooms").
		Where(sq.Eq{"id": roomID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var room model.Room
	err = r.Chk(ctx).GetContext(ctx, &room, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.NewAppError(model.CodeNotFound, err)
	}
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *Repository) DeleteRoom(ctx context.Context, roomID string) error {
	query, args, err := sq.Delete("rooms").
		Where(sq.Eq{"id": roomID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete room: %v", err)
	}

	return nil
}

// UpsertParticipant enforces at most one participant row per (room, user);
// re-joining refreshes the nickname.
func (r *Repository) UpsertParticipant(ctx context.Context, participant *model.Participant) error {
	query, args, err := sq.Insert("room_participants").
		Columns("room_id", "user_id", "nickname", "role").
		Values(participant.RoomID, participant.UserID, participant.Nickname, participant.Role).
		Suffix("ON CONFLICT (room_id, user_id) DO UPDATE SET nickname = EXCLUDED.nickname").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert participant: %v", err)
	}

	return nil
}

func (r *Repository) GetRoomParticipants(ctx context.Context, roomID string) (model.ParticipantList, error) {
	query, args, err := sq.Select("id", "room_id", "user_id", "nickname", "role", "joined_at").
		From("room_participants").
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("joined_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var participants model.ParticipantList
	err = r.Chk(ctx).SelectContext(ctx, &participants, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get room participants: %v", err)
	}

	return participants, nil
}

func (r *Repository) RemoveParticipant(ctx context.Context, roomID, userID string) error {
	query, args, err := sq.Delete("room_participants").
		Where(sq.And{
			sq.Eq{"room_id": roomID},
			sq.Eq{"user_id": userID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to remove participant: %v", err)
	}

	return nil
}

// GetRecentMessages returns up to the most recent 100 messages of a room in
// ascending created_at order.
func (r *Repository) GetRecentMessages(ctx context.Context, roomID string) (model.MessageList, error) {
	recent := sq.Select("id", "room_id", "user_name", "text", "mentions", "file_url", "file_type", "created_at").
		From("messages").
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("created_at DESC").
		Limit(recentMessagesCap)

	query, args, err := sq.Select("id", "room_id", "user_name", "text", "mentions", "file_url", "file_type", "created_at").
		FromSelect(recent, "recent").
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent messages: %v", err)
	}

	return messages, nil
}

// SaveMessage inserts a message row. A foreign-key violation means the room
// was deleted between the existence check and the insert; that case is
// surfaced with the room-deleted code so callers can redirect the user out.
func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("id", "room_id", "user_name", "text", "mentions", "file_url", "file_type").
		Values(message.ID, message.RoomID, message.UserName, message.Text, message.Mentions, message.FileURL, message.FileType).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		if model.IsRoomDeleted(err) {
			return model.NewAppError(model.CodeRoomDeleted, err)
		}
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

// GetNotificationSettings returns the user's explicit per-room preferences.
// Rooms without a row default to enabled.
func (r *Repository) GetNotificationSettings(ctx context.Context, userID string) ([]model.NotificationSetting, error) {
	query, args, err := sq.Select("room_id", "user_id", "notifications_enabled", "updated_at").
		From("room_notification_settings").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var settings []model.NotificationSetting
	err = r.Chk(ctx).SelectContext(ctx, &settings, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification settings: %v", err)
	}

	return settings, nil
}

func (r *Repository) UpsertNotificationSetting(ctx context.Context, roomID, userID string, enabled bool) error {
	query, args, err := sq.Insert("room_notification_settings").
		Columns("room_id", "user_id", "notifications_enabled").
		Values(roomID, userID, enabled).
		Suffix("ON CONFLICT (room_id, user_id) DO UPDATE SET notifications_enabled = EXCLUDED.notifications_enabled, updated_at = now()").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert notification setting: %v", err)
	}

	return nil
}

// UpdateUserNickname propagates a platform profile change into the users
// table and every join record. Stored messages keep the name they were sent
// under.
func (r *Repository) UpdateUserNickname(ctx context.Context, userID, newNickname string) error {
	query, args, err := sq.Update("users").
		Set("nickname", newNickname).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return err
	}

	query, args, err = sq.Update("room_participants").
		Set("nickname", newNickname).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}
