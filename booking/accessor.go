package booking

import (
	"database/sql"
	"errors"

	"gym-slots/slot"
)

var (
	ErrSlotNotFound  = errors.New("slot not found")
	ErrAlreadyBooked = errors.New("slot already booked for this date")
	ErrNotFound      = errors.New("no booking found")
)

// Accessor is the DB layer entrypoint for ledger queries.
type Accessor struct {
	db           *sql.DB
	slotAccessor *slot.Accessor
}

func NewAccessor(db *sql.DB, slotAccessor *slot.Accessor) *Accessor {
	return &Accessor{db: db, slotAccessor: slotAccessor}
}
