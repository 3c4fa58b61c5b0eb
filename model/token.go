package model

import "time"

// AuthTokenEntity binds one opaque token to one user. Tokens never expire;
// revocation happens by deleting the row out of band.
type AuthTokenEntity struct {
	Token     string    `db:"token"`
	UserID    uint64    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}
