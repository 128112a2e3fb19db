package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"gym-slots/auth"
)

func (a *Accessor) Register(ctx context.Context, reg Registration) (int, error) {
	if err := reg.Validate(); err != nil {
		return 0, fmt.Errorf("validate: %w", err)
	}

	hash, err := auth.HashPassword(reg.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	var id int
	query := `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id`
	err = a.db.QueryRowContext(ctx, query, strings.TrimSpace(reg.Name), strings.TrimSpace(reg.Email), hash).Scan(&id)
	if err != nil {
		// the unique constraint on email decides duplicates, not a pre-read
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}

func (a *Accessor) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User

	query := `SELECT id, name, email, password_hash FROM users WHERE email = $1`
	row := a.db.QueryRowContext(ctx, query, email)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan: %w", err)
	}

	return &u, nil
}

func (a *Accessor) VerifyCredentials(ctx context.Context, email, password string) (*User, error) {
	u, err := a.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidPassword
	}

	return u, nil
}
