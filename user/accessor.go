package user

import (
	"database/sql"
	"errors"
)

var (
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrNotFound        = errors.New("user not found")
	ErrInvalidPassword = errors.New("incorrect password")
)

// Accessor is the DB layer entrypoint for user-related queries.
type Accessor struct {
	db *sql.DB
}

func NewAccessor(db *sql.DB) *Accessor {
	return &Accessor{db: db}
}
