package model

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TableMessages = "messages"
)

// FeedEvent is the envelope the hosted store's change feed delivers for a
// row-level insert: the table name plus the full row payload.
type FeedEvent struct {
	Table string          `json:"table"`
	Row   json.RawMessage `json:"row"`
}

type FeedConnectClaims struct {
	jwt.RegisteredClaims
}

type FeedSubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`

	UserID string `json:"user_id"`
	RoomID string `json:"room_id"`
}
