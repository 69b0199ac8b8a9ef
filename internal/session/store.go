package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sessions are opaque server-side records keyed by a random token carried
// in an HTTP-only cookie. The token itself contains no user data.
const TTL = 7 * 24 * time.Hour

var ErrNotFound = errors.New("session not found")

type Store interface {
	// Create issues a new session token bound to the given user.
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	// Get resolves a token to its user id. Returns ErrNotFound for
	// unknown or expired tokens.
	Get(ctx context.Context, token string) (uuid.UUID, error)
	// Delete invalidates a token. Deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error
}
