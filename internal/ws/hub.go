package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-gateway/internal/model"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512

	sendBufferSize = 256
)

const (
	FrameMessage    = "message"
	FrameAlert      = "alert"
	FrameRoomClosed = "room_closed"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Frame is the envelope every event reaches the browser in.
type Frame struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// TokenValidator checks the feed tokens presented on the push endpoint.
type TokenValidator interface {
	ValidateConnectToken(tokenString string) (*model.FeedConnectClaims, error)
	ValidateSubscribeToken(tokenString string) (*model.FeedSubscribeClaims, error)
}

// frame is a marshaled event tagged with its room for scoped delivery.
type frame struct {
	room string
	data []byte
}

type conn struct {
	hub  *Hub
	sock *websocket.Conn

	// room restricts delivery to one room's events; empty receives all.
	room string
	send chan []byte
}

// Hub fans session events out to every connected browser tab. It satisfies
// the session event sink: pushes never block and never fail outward, a slow
// consumer is dropped instead.
type Hub struct {
	logger    logger_lib.LoggerInterface
	validator TokenValidator

	mu    sync.RWMutex
	conns map[*conn]struct{}

	broadcast  chan frame
	register   chan *conn
	unregister chan *conn
}

func NewHub(logger logger_lib.LoggerInterface, validator TokenValidator) *Hub {
	return &Hub{
		logger:     logger,
		validator:  validator,
		conns:      make(map[*conn]struct{}),
		broadcast:  make(chan frame, sendBufferSize),
		register:   make(chan *conn),
		unregister: make(chan *conn),
	}
}

// Run owns the connection registry until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.conns {
				close(c.send)
				delete(h.conns, c)
			}
			h.mu.Unlock()
			return ctx.Err()

		case c := <-h.register:
			h.mu.Lock()
			h.conns[c] = struct{}{}
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.conns[c]; ok {
				delete(h.conns, c)
				close(c.send)
			}
			h.mu.Unlock()

		case f := <-h.broadcast:
			var stalled []*conn
			h.mu.RLock()
			for c := range h.conns {
				if c.room != "" && c.room != f.room {
					continue
				}
				select {
				case c.send <- f.data:
				default:
					stalled = append(stalled, c)
				}
			}
			h.mu.RUnlock()

			for _, c := range stalled {
				h.mu.Lock()
				if _, ok := h.conns[c]; ok {
					delete(h.conns, c)
					close(c.send)
					h.logger.Error("dropped stalled websocket consumer")
				}
				h.mu.Unlock()
			}
		}
	}
}

func (h *Hub) push(frameType, roomID string, payload interface{}) {
	data, err := json.Marshal(Frame{Type: frameType, Payload: payload})
	if err != nil {
		h.logger.Error(fmt.Sprintf("failed to marshal %s frame: %v", frameType, err))
		return
	}

	select {
	case h.broadcast <- frame{room: roomID, data: data}:
	default:
		h.logger.Error("websocket broadcast queue overflow, frame dropped")
	}
}

func (h *Hub) PushMessage(message model.Message) {
	h.push(FrameMessage, message.RoomID, message)
}

func (h *Hub) PushAlert(alert model.Alert) {
	h.push(FrameAlert, alert.RoomID, alert)
}

func (h *Hub) PushRoomClosed(roomID string) {
	h.push(FrameRoomClosed, roomID, map[string]string{"room_id": roomID})
}

// ServeWS authorizes, upgrades and hands the connection to the pumps. A
// connect token (?token=) opens an unscoped connection; a subscribe token
// with its room (?token=&room=) opens one delivering that room's events only.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	room := r.URL.Query().Get("room")

	if room != "" {
		claims, err := h.validator.ValidateSubscribeToken(token)
		if err != nil || claims.RoomID != room {
			h.logger.Error(fmt.Sprintf("rejected scoped feed connection to room %s: %v", room, err))
			http.Error(w, "invalid subscribe token", http.StatusUnauthorized)
			return
		}
	} else {
		if _, err := h.validator.ValidateConnectToken(token); err != nil {
			h.logger.Error(fmt.Sprintf("rejected feed connection: %v", err))
			http.Error(w, "invalid connect token", http.StatusUnauthorized)
			return
		}
	}

	sock, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error(fmt.Sprintf("failed to upgrade connection: %v", err))
		return
	}

	c := &conn{
		hub:  h,
		sock: sock,
		room: room,
		send: make(chan []byte, sendBufferSize),
	}
	h.register <- c

	go c.writePump()
	go c.readPump()
}

// readPump drains the socket so close frames and pongs are processed. The
// browser never sends application data over this channel.
func (c *conn) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.sock.Close()
	}()

	c.sock.SetReadLimit(maxMessageSize)
	_ = c.sock.SetReadDeadline(time.Now().Add(pongWait))
	c.sock.SetPongHandler(func(string) error {
		return c.sock.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.sock.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Error(fmt.Sprintf("websocket read failed: %v", err))
			}
			return
		}
	}
}

func (c *conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.sock.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.sock.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.sock.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.sock.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.sock.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.sock.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
