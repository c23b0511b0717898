package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"restoflow/internal/database"
	"restoflow/internal/models"
)

const selectUserSQL = `SELECT user_id, username, password, role FROM users WHERE username = $1 AND role = $2`

func (s *Store) FindUser(ctx context.Context, username, role string) (models.User, error) {
	var u models.User
	err := s.db.QueryRow(ctx, selectUserSQL, username, role).Scan(&u.ID, &u.Username, &u.Password, &u.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, database.Wrap("select user", err)
	}
	return u, nil
}
