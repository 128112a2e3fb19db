package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Availability returns every catalog slot with its booked flag for date.
// One statement, so the result is a single snapshot of the ledger: a slot
// cannot flicker between booked and free within one call.
func (a *Accessor) Availability(ctx context.Context, date string) ([]SlotAvailability, error) {
	query := `SELECT s.id, s.start_time, s.end_time,
		EXISTS(SELECT 1 FROM bookings b WHERE b.slot_id = s.id AND b.booking_date = $1) AS booked
		FROM slots s ORDER BY s.id`
	rows, err := a.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	var out []SlotAvailability
	for rows.Next() {
		var sa SlotAvailability
		if err := rows.Scan(&sa.ID, &sa.StartTime, &sa.EndTime, &sa.Booked); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, sa)
	}

	return out, rows.Err()
}

// Book inserts a ledger row for (slotID, date) owned by email and returns
// its id. The at-most-one-booking-per-slot-per-date guarantee comes from the
// unique index on (slot_id, booking_date): under concurrent attempts on the
// same pair the database accepts exactly one insert and every loser gets
// ErrAlreadyBooked.
func (a *Accessor) Book(ctx context.Context, email string, slotID int, date string) (int, error) {
	exists, err := a.slotAccessor.Exists(ctx, slotID)
	if err != nil {
		return 0, fmt.Errorf("slot exists: %w", err)
	}
	if !exists {
		return 0, ErrSlotNotFound
	}

	var id int
	query := `INSERT INTO bookings (slot_id, user_email, booking_date) VALUES ($1, $2, $3) RETURNING id`
	err = a.db.QueryRowContext(ctx, query, slotID, email, date).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505": // unique_violation on (slot_id, booking_date)
				return 0, ErrAlreadyBooked
			case "23503": // foreign_key_violation, slot deleted between check and insert
				return 0, ErrSlotNotFound
			}
		}
		return 0, fmt.Errorf("insert booking: %w", err)
	}

	return id, nil
}

// Cancel deletes the booking for (slotID, date) if it is owned by email.
// The owner predicate lives inside the DELETE itself, so "not yours" and
// "does not exist" are the same zero-row outcome and stay indistinguishable
// to callers.
func (a *Accessor) Cancel(ctx context.Context, email string, slotID int, date string) error {
	query := `DELETE FROM bookings WHERE slot_id = $1 AND booking_date = $2 AND user_email = $3`
	res, err := a.db.ExecContext(ctx, query, slotID, date, email)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// ListForUser returns email's bookings joined with slot times, soonest first.
func (a *Accessor) ListForUser(ctx context.Context, email string) ([]UserBooking, error) {
	query := `SELECT b.id, b.slot_id, b.booking_date::text, s.start_time, s.end_time
		FROM bookings b
		JOIN slots s ON b.slot_id = s.id
		WHERE b.user_email = $1
		ORDER BY b.booking_date, s.start_time`
	rows, err := a.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	var out []UserBooking
	for rows.Next() {
		var ub UserBooking
		if err := rows.Scan(&ub.BookingID, &ub.SlotID, &ub.BookingDate, &ub.StartTime, &ub.EndTime); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, ub)
	}

	return out, rows.Err()
}
