package infra

import (
	"context"
	"net/http"
	"strings"

	"github.com/s21platform/chat-gateway/internal/config"
	"github.com/s21platform/chat-gateway/internal/model"
)

type AccessTokenValidator interface {
	ValidateAccessToken(tokenString string) (*model.AccessClaims, error)
}

// AuthHTTP validates the bearer token and stores the caller's id and
// nickname in the request context.
func AuthHTTP(validator AccessTokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateAccessToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, "invalid access token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), config.KeyUUID, claims.Subject)
			ctx = context.WithValue(ctx, config.KeyNickname, claims.Nickname)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
