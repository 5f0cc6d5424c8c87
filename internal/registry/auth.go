package registry

import (
	"context"

	"github.com/feiralivre/feirad/internal/store"
)

// Authenticator validates login/password pairs against the user table.
//
// It is a pure lookup: both values must match a stored row exactly
// (plaintext comparison), and it is called afresh for every request from
// caller-supplied credentials. No hashing, no rate limiting, no lockout.
type Authenticator struct {
	db *store.Store
}

// Authenticate returns the matching user, or nil when the pair matches no
// row. A mismatch is not an error; errors mean the store itself failed.
func (a *Authenticator) Authenticate(ctx context.Context, login, password string) (*store.User, error) {
	return a.db.Authenticate(ctx, login, password)
}
