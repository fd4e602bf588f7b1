package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s21platform/chat-gateway/internal/model"
)

const (
	accessTokenTTL = 24 * time.Hour
	feedTokenTTL   = 30 * time.Minute
)

type Generator struct {
	secret []byte
}

func New(secret string) *Generator {
	return &Generator{
		secret: []byte(secret),
	}
}

// GenerateAccessToken issues the REST bearer token for an authenticated user.
func (g *Generator) GenerateAccessToken(user *model.User) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(accessTokenTTL)

	claims := model.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Nickname: user.Nickname,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

// GenerateConnectToken authorizes opening the push connection.
func (g *Generator) GenerateConnectToken(userID string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(feedTokenTTL)

	claims := model.FeedConnectClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign connect JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

// GenerateSubscribeToken authorizes subscribing to one room's change feed.
func (g *Generator) GenerateSubscribeToken(userID, roomID string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(feedTokenTTL)

	claims := model.FeedSubscribeClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Channel: roomID,
		UserID:  userID,
		RoomID:  roomID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign subscribe JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (g *Generator) ValidateAccessToken(tokenString string) (*model.AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse access JWT token: %w", err)
	}

	if claims, ok := token.Claims.(*model.AccessClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid access JWT token")
}

func (g *Generator) ValidateConnectToken(tokenString string) (*model.FeedConnectClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.FeedConnectClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse connect JWT token: %w", err)
	}

	if claims, ok := token.Claims.(*model.FeedConnectClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid connect JWT token")
}

func (g *Generator) ValidateSubscribeToken(tokenString string) (*model.FeedSubscribeClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.FeedSubscribeClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse subscribe JWT token: %w", err)
	}

	if claims, ok := token.Claims.(*model.FeedSubscribeClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid subscribe JWT token")
}
