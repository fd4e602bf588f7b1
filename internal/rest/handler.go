package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-gateway/internal/client/storage"
	"github.com/s21platform/chat-gateway/internal/config"
	"github.com/s21platform/chat-gateway/internal/model"
	"github.com/s21platform/chat-gateway/internal/pkg/mention"
	"github.com/s21platform/chat-gateway/internal/pkg/tx"
	"github.com/s21platform/chat-gateway/internal/session"
)

// maxAttachmentSize bounds uploaded attachment bodies.
const maxAttachmentSize = 50 << 20

type Handler struct {
	repository    DBRepo
	session       SessionManager
	storageClient StorageClient
	aiClient      AIClient
	validator     Validator
	jwtGenerator  JWTGenerator
	sessionStore  SessionStore
}

func New(
	repo DBRepo,
	sessionManager SessionManager,
	storageClient StorageClient,
	aiClient AIClient,
	validator Validator,
	jwtGenerator JWTGenerator,
	sessionStore SessionStore,
) *Handler {
	return &Handler{
		repository:    repo,
		session:       sessionManager,
		storageClient: storageClient,
		aiClient:      aiClient,
		validator:     validator,
		jwtGenerator:  jwtGenerator,
		sessionStore:  sessionStore,
	}
}

// AttachRoutes mounts the API. Routes behind authMiddleware require a valid
// access token.
func (h *Handler) AttachRoutes(router chi.Router, authMiddleware func(http.Handler) http.Handler) {
	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)
		r.Post("/auth/restore", h.RestoreSession)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Post("/auth/logout", h.Logout)

			r.Get("/rooms", h.GetRooms)
			r.Post("/rooms", h.CreateRoom)
			r.Post("/rooms/{roomId}/join", h.JoinRoom)
			r.Delete("/rooms/{roomId}", h.DeleteRoom)
			r.Post("/rooms/{roomId}/enter", h.EnterRoom)
			r.Post("/rooms/{roomId}/leave", h.LeaveRoom)

			r.Get("/rooms/{roomId}/messages", h.GetRoomMessages)
			r.Post("/rooms/{roomId}/messages", h.SendMessage)
			r.Post("/rooms/{roomId}/attachments", h.UploadAttachment)
			r.Get("/rooms/{roomId}/participants", h.GetParticipants)
			r.Put("/rooms/{roomId}/notifications", h.ToggleNotifications)
			r.Post("/rooms/{roomId}/summary", h.SummarizeRoom)
			r.Post("/rooms/{roomId}/suggest", h.SuggestReply)
			r.Get("/rooms/{roomId}/subscribe-token", h.GetSubscribeToken)

			r.Get("/alerts", h.GetAlerts)
			r.Get("/feed/connect-token", h.GetConnectToken)
		})
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Register")

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateRegister(&req); err != nil {
		logger.Error(fmt.Sprintf("registration validation failed: %v", err))
		h.writeAppError(w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to hash password: %v", err))
		h.writeError(w, "failed to process password", http.StatusInternalServerError)
		return
	}

	user := &model.User{
		UserID:       req.UserID,
		PasswordHash: string(hash),
		Nickname:     req.Nickname,
	}

	id, err := h.repository.CreateUser(r.Context(), user)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create user: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.writeJSON(w, RegisterResponse{ID: id, UserID: req.UserID, Nickname: req.Nickname}, http.StatusCreated)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Login")

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.repository.GetUserByUserID(r.Context(), req.UserID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to find user: %v", err))
		h.writeError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Error("password mismatch")
		h.writeError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := h.session.Login(r.Context(), user); err != nil {
		logger.Error(fmt.Sprintf("failed to open session: %v", err))
		h.writeError(w, "failed to open session", http.StatusBadGateway)
		return
	}

	if err := h.sessionStore.Save(user); err != nil {
		logger.Error(fmt.Sprintf("failed to persist session: %v", err))
	}

	token, expiresAt, err := h.jwtGenerator.GenerateAccessToken(user)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, "failed to generate access token", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, LoginResponse{Token: token, ExpiresAt: expiresAt, User: user}, http.StatusOK)
}

// RestoreSession re-authenticates from the persisted session file. A file
// written by another app version is treated as expired and removed.
func (h *Handler) RestoreSession(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RestoreSession")

	user, err := h.sessionStore.Load()
	if errors.Is(err, session.ErrSessionExpired) {
		logger.Info("persisted session expired, clearing")
		_ = h.sessionStore.Clear()
		h.writeError(w, "session expired", http.StatusUnauthorized)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to load persisted session: %v", err))
		h.writeError(w, "failed to load persisted session", http.StatusInternalServerError)
		return
	}
	if user == nil {
		h.writeError(w, "no persisted session", http.StatusUnauthorized)
		return
	}

	// The stored profile may be stale; re-read it before binding the session.
	current, err := h.repository.GetUserByUserID(r.Context(), user.UserID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to refresh user profile: %v", err))
		_ = h.sessionStore.Clear()
		h.writeError(w, "session expired", http.StatusUnauthorized)
		return
	}

	if err := h.session.Login(r.Context(), current); err != nil {
		logger.Error(fmt.Sprintf("failed to open session: %v", err))
		h.writeError(w, "failed to open session", http.StatusBadGateway)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateAccessToken(current)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, "failed to generate access token", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, RestoreSessionResponse{Token: token, ExpiresAt: expiresAt, User: current}, http.StatusOK)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Logout")

	h.session.Logout()
	if err := h.sessionStore.Clear(); err != nil {
		logger.Error(fmt.Sprintf("failed to clear persisted session: %v", err))
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetRooms")

	rooms, err := h.repository.GetRooms(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get rooms: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.writeJSON(w, GetRoomsResponse{Rooms: *rooms}, http.StatusOK)
}

func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateRoom")

	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateCreateRoom(&req); err != nil {
		logger.Error(fmt.Sprintf("room validation failed: %v", err))
		h.writeAppError(w, err)
		return
	}

	user, ok := h.authenticatedUser(w, logger)
	if !ok {
		return
	}

	room := &model.Room{
		Name:            strings.TrimSpace(req.Name),
		CreatorID:       user.ID,
		CreatorNickname: user.Nickname,
		IsPrivate:       req.IsPrivate,
	}
	if req.IsPrivate {
		code := uuid.New().String()[:8]
		room.InviteCode = &code
	}

	var roomID string
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		var err error
		roomID, err = h.repository.CreateRoom(ctx, room)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create room: %v", err))
			return err
		}

		err = h.repository.UpsertParticipant(ctx, &model.Participant{
			RoomID:   roomID,
			UserID:   user.ID,
			Nickname: user.Nickname,
			Role:     model.RoleCreator,
		})
		if err != nil {
			logger.Error(fmt.Sprintf("failed to add creator to room: %v", err))
			return err
		}

		return nil
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to complete room creation transaction: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.writeJSON(w, CreateRoomResponse{ID: roomID, InviteCode: room.InviteCode}, http.StatusCreated)
}

func (h *Handler) JoinRoom(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("JoinRoom")

	roomID := chi.URLParam(r, "roomId")

	var req JoinRoomRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error(fmt.Sprintf("failed to decode request: %v", err))
			h.writeError(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	user, ok := h.authenticatedUser(w, logger)
	if !ok {
		return
	}

	room, err := h.repository.GetRoomByID(r.Context(), roomID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get room: %v", err))
		h.writeAppError(w, err)
		return
	}

	if room.IsPrivate {
		if room.InviteCode == nil || req.InviteCode != *room.InviteCode {
			logger.Error("invite code mismatch for private room")
			h.writeAppError(w, model.NewAppError(model.CodePermissionDenied, fmt.Errorf("invalid invite code")))
			return
		}
	}

	err = h.repository.UpsertParticipant(r.Context(), &model.Participant{
		RoomID:   roomID,
		UserID:   user.ID,
		Nickname: user.Nickname,
		Role:     model.RoleMember,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to join room: %v", err))
		h.writeAppError(w, err)
		return
	}

	participants, err := h.repository.GetRoomParticipants(r.Context(), roomID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get participants: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.writeJSON(w, GetParticipantsResponse{Participants: participants}, http.StatusOK)
}

// DeleteRoom is creator-only. Deletion cascades to messages and join records
// in the store; the session broadcasts room_closed to connected tabs.
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteRoom")

	roomID := chi.URLParam(r, "roomId")

	user, ok := h.authenticatedUser(w, logger)
	if !ok {
		return
	}

	room, err := h.repository.GetRoomByID(r.Context(), roomID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get room: %v", err))
		h.writeAppError(w, err)
		return
	}

	if room.CreatorID != user.ID && !user.IsAdmin {
		logger.Error(fmt.Sprintf("user %s attempted to delete room %s owned by %s", user.ID, roomID, room.CreatorID))
		h.writeAppError(w, model.NewAppError(model.CodePermissionDenied, fmt.Errorf("only the creator can delete a room")))
		return
	}

	if err := h.repository.DeleteRoom(r.Context(), roomID); err != nil {
		logger.Error(fmt.Sprintf("failed to delete room: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.session.RoomClosed(roomID)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) EnterRoom(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EnterRoom")

	roomID := chi.URLParam(r, "roomId")

	room, err := h.repository.GetRoomByID(r.Context(), roomID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get room: %v", err))
		h.writeAppError(w, err)
		return
	}

	messages, err := h.session.EnterRoom(r.Context(), roomID)
	historyUnavailable := false
	if err != nil {
		if h.session.SubscriptionState(session.ContextRoom) != session.StateOpen {
			logger.Error(fmt.Sprintf("failed to enter room: %v", err))
			h.writeError(w, "failed to open room subscription", http.StatusBadGateway)
			return
		}
		// Subscription is live, only the history load failed.
		logger.Error(fmt.Sprintf("room history unavailable: %v", err))
		historyUnavailable = true
	}

	participants := h.session.Participants()

	h.writeJSON(w, EnterRoomResponse{
		Room:               room,
		Participants:       participants,
		Messages:           displayedMessages(messages, participants),
		HistoryUnavailable: historyUnavailable,
	}, http.StatusOK)
}

func (h *Handler) LeaveRoom(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("LeaveRoom")

	h.session.LeaveRoom()

	w.WriteHeader(http.StatusNoContent)
}

// GetRoomMessages serves the open room's log with spans and grouping flags
// derived fresh from the current roster snapshot.
func (h *Handler) GetRoomMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetRoomMessages")

	roomID := chi.URLParam(r, "roomId")
	if h.session.CurrentRoomID() != roomID {
		logger.Error(fmt.Sprintf("room %s is not the open room", roomID))
		h.writeError(w, "room is not open", http.StatusConflict)
		return
	}

	h.writeJSON(w, GetMessagesResponse{
		Messages: displayedMessages(h.session.Messages(), h.session.Participants()),
	}, http.StatusOK)
}

func (h *Handler) GetParticipants(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetParticipants")

	roomID := chi.URLParam(r, "roomId")

	if h.session.CurrentRoomID() == roomID {
		participants, err := h.session.RefreshParticipants(r.Context())
		if err != nil {
			logger.Error(fmt.Sprintf("failed to refresh participants: %v", err))
			h.writeAppError(w, err)
			return
		}
		h.writeJSON(w, GetParticipantsResponse{Participants: participants}, http.StatusOK)
		return
	}

	participants, err := h.repository.GetRoomParticipants(r.Context(), roomID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get participants: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.writeJSON(w, GetParticipantsResponse{Participants: participants}, http.StatusOK)
}

// SendMessage persists a text message. Mention metadata is extracted from the
// raw text and filtered to the current roster before the insert; delivery to
// subscribers rides the store's change feed, not this handler.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	roomID := chi.URLParam(r, "roomId")

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeAppError(w, err)
		return
	}

	user, ok := h.authenticatedUser(w, logger)
	if !ok {
		return
	}

	text := strings.TrimSpace(req.Text)
	mentions := mention.FilterToRoster(mention.ExtractNicknames(text), h.session.Participants())

	message := &model.Message{
		ID:       uuid.New().String(),
		RoomID:   roomID,
		UserName: user.Nickname,
		Text:     &text,
		Mentions: pq.StringArray(mentions),
	}

	if err := h.repository.SaveMessage(r.Context(), message); err != nil {
		if model.IsRoomDeleted(err) {
			logger.Error(fmt.Sprintf("room %s deleted mid-send", roomID))
			h.session.RoomClosed(roomID)
			h.writeAppError(w, model.NewAppError(model.CodeRoomDeleted, err))
			return
		}
		logger.Error(fmt.Sprintf("failed to save message: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.writeJSON(w, SendMessageResponse{MessageID: message.ID, Mentions: mentions}, http.StatusOK)
}

// UploadAttachment stores an image or video in the object store and persists
// an attachment message pointing at it. An optional caption rides in the
// "text" form field.
func (h *Handler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UploadAttachment")

	roomID := chi.URLParam(r, "roomId")

	user, ok := h.authenticatedUser(w, logger)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
		logger.Error(fmt.Sprintf("failed to parse multipart form: %v", err))
		h.writeError(w, "invalid multipart body", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read file part: %v", err))
		h.writeError(w, "file part is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	fileType, err := storage.FileKind(contentType)
	if err != nil {
		logger.Error(fmt.Sprintf("rejected attachment of type %s", contentType))
		h.writeAppError(w, err)
		return
	}

	path := h.storageClient.ObjectPath(roomID, header.Filename)
	fileURL, err := h.storageClient.Upload(r.Context(), path, contentType, file)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upload attachment: %v", err))
		h.writeAppError(w, err)
		return
	}

	message := &model.Message{
		ID:       uuid.New().String(),
		RoomID:   roomID,
		UserName: user.Nickname,
		FileURL:  &fileURL,
		FileType: &fileType,
	}

	if caption := strings.TrimSpace(r.FormValue("text")); caption != "" {
		message.Text = &caption
		message.Mentions = pq.StringArray(mention.FilterToRoster(mention.ExtractNicknames(caption), h.session.Participants()))
	}

	if err := h.repository.SaveMessage(r.Context(), message); err != nil {
		if model.IsRoomDeleted(err) {
			logger.Error(fmt.Sprintf("room %s deleted mid-upload", roomID))
			h.session.RoomClosed(roomID)
			h.writeAppError(w, model.NewAppError(model.CodeRoomDeleted, err))
			return
		}
		logger.Error(fmt.Sprintf("failed to save attachment message: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.writeJSON(w, UploadAttachmentResponse{MessageID: message.ID, FileURL: fileURL, FileType: fileType}, http.StatusOK)
}

func (h *Handler) ToggleNotifications(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ToggleNotifications")

	roomID := chi.URLParam(r, "roomId")

	var req ToggleNotificationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.session.SetNotificationPreference(r.Context(), roomID, req.Enabled); err != nil {
		logger.Error(fmt.Sprintf("failed to set notification preference: %v", err))
		h.writeAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetAlerts")

	h.writeJSON(w, GetAlertsResponse{Alerts: h.session.VisibleAlerts()}, http.StatusOK)
}

// SuggestReply asks the generative API for a reply draft. Degraded modes
// (missing key, cooldown, quota) come back as canned phrases, never errors.
func (h *Handler) SuggestReply(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SuggestReply")

	roomID := chi.URLParam(r, "roomId")

	var req SuggestReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	room, err := h.repository.GetRoomByID(r.Context(), roomID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get room: %v", err))
		h.writeAppError(w, err)
		return
	}

	reply := h.aiClient.GenerateReply(r.Context(), req.Message, room.Name, roomID)

	h.writeJSON(w, SuggestReplyResponse{Reply: reply}, http.StatusOK)
}

func (h *Handler) SummarizeRoom(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SummarizeRoom")

	roomID := chi.URLParam(r, "roomId")
	if h.session.CurrentRoomID() != roomID {
		logger.Error(fmt.Sprintf("room %s is not the open room", roomID))
		h.writeError(w, "room is not open", http.StatusConflict)
		return
	}

	messages := h.session.Messages()
	if len(messages) == 0 {
		h.writeError(w, "nothing to summarize", http.StatusUnprocessableEntity)
		return
	}

	room, err := h.repository.GetRoomByID(r.Context(), roomID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get room: %v", err))
		h.writeAppError(w, err)
		return
	}

	summary, err := h.aiClient.Summarize(r.Context(), messages, room.Name)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to summarize room: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.writeJSON(w, SummarizeRoomResponse{Summary: summary}, http.StatusOK)
}

func (h *Handler) GetConnectToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate connect token: %v", err))
		h.writeError(w, "failed to generate connect token", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, GetConnectTokenResponse{Token: token, ExpiresAt: expiresAt}, http.StatusOK)
}

func (h *Handler) GetSubscribeToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSubscribeToken")

	roomID := chi.URLParam(r, "roomId")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(userUUID, roomID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, "failed to generate subscribe token", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, GetSubscribeTokenResponse{Token: token, ExpiresAt: expiresAt, Channel: roomID}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func (h *Handler) authenticatedUser(w http.ResponseWriter, logger logger_lib.LoggerInterface) (*model.User, bool) {
	user := h.session.User()
	if user == nil {
		logger.Error("no authenticated session")
		h.writeError(w, "no authenticated session", http.StatusUnauthorized)
		return nil, false
	}
	return user, true
}

func parseSpans(text string, participants model.ParticipantList) []model.Span {
	return mention.Parse(text, participants)
}

var codeStatuses = map[string]int{
	model.CodeValidationFailed:  http.StatusBadRequest,
	model.CodeNotFound:          http.StatusNotFound,
	model.CodeConflict:          http.StatusConflict,
	model.CodePermissionDenied:  http.StatusForbidden,
	model.CodeTransport:         http.StatusBadGateway,
	model.CodeRateLimited:       http.StatusTooManyRequests,
	model.CodeUnsupportedFormat: http.StatusUnsupportedMediaType,
	model.CodeRoomDeleted:       http.StatusGone,
}

// writeAppError renders err's stable code and templated user message.
// Technical detail stays in logs.
func (h *Handler) writeAppError(w http.ResponseWriter, err error) {
	appErr := model.AsAppError(err)

	status, ok := codeStatuses[appErr.Code]
	if !ok {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Error{
		Code:    appErr.Code,
		Field:   appErr.Field,
		Message: appErr.UserMessage(),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Error{Code: model.CodeTransport, Message: message})
}
