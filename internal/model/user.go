package model

type User struct {
	ID           string `db:"id" json:"id"`
	UserID       string `db:"user_id" json:"user_id"`
	PasswordHash string `db:"password_hash" json:"-"`
	Nickname     string `db:"nickname" json:"nickname"`
	IsAdmin      bool   `db:"is_admin" json:"is_admin"`
}
