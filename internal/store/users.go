package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Authenticate looks up a user by exact login/password pair.
// Returns (nil, nil) when no row matches; a mismatch is not an error.
func (s *Store) Authenticate(ctx context.Context, login, password string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT login, password, name
		FROM users
		WHERE login = ? AND password = ?
	`, login, password)

	var u User
	err := row.Scan(&u.Login, &u.Password, &u.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return &u, nil
}
