package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-gateway/internal/config"
)

// NicknameUpdatedMessage is the platform's user profile change event.
type NicknameUpdatedMessage struct {
	UserID   string `json:"uuid"`
	Nickname string `json:"nickname"`
}

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

// Handler applies a nickname change to the users table and every join
// record. Stored messages keep the name they were sent under.
func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("NicknameUpdated")

	var msg NicknameUpdatedMessage
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal message: %v", err))
		return
	}

	if msg.UserID == "" || msg.Nickname == "" {
		logger.Error("message missing uuid or nickname")
		return
	}

	if err := h.repository.UpdateUserNickname(ctx, msg.UserID, msg.Nickname); err != nil {
		logger.Error(fmt.Sprintf("failed to update nickname for %s: %v", msg.UserID, err))
		return
	}

	logger.Info(fmt.Sprintf("updated nickname for user %s", msg.UserID))
}
