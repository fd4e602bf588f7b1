package model

import "github.com/golang-jwt/jwt/v5"

// AccessClaims authenticates REST requests; Subject carries the user's
// internal id.
type AccessClaims struct {
	jwt.RegisteredClaims

	Nickname string `json:"nickname"`
}
