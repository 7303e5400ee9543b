// Package session holds server-side login state, keyed by an opaque id
// delivered in a cookie. The memory backend covers single-process setups;
// the Redis backend shares sessions across instances.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// CookieName is the cookie carrying the session id.
const CookieName = "homehunt_session"

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// Session is the identity held for a logged-in user.
type Session struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Store creates, resolves and destroys sessions.
type Store interface {
	Create(ctx context.Context, s Session) (string, error)
	Get(ctx context.Context, id string) (*Session, error)
	Destroy(ctx context.Context, id string) error
}

// newID returns a 64-character hex id from 32 bytes of secure randomness.
func newID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
