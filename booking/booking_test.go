package booking_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gym-slots/booking"
	"gym-slots/slot"
)

const (
	email = "jane@example.com"
	date  = "2024-06-01"

	existsQuery = `SELECT EXISTS(SELECT 1 FROM slots WHERE id = $1)`
	insertQuery = `INSERT INTO bookings (slot_id, user_email, booking_date) VALUES ($1, $2, $3) RETURNING id`
	deleteQuery = `DELETE FROM bookings WHERE slot_id = $1 AND booking_date = $2 AND user_email = $3`
)

func setup(t *testing.T) (*booking.Accessor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return booking.NewAccessor(db, slot.NewAccessor(db)), mock
}

func expectSlotExists(mock sqlmock.Sqlmock, id int, exists bool) {
	mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))
}

func TestAvailability(t *testing.T) {
	t.Parallel()
	a, mock := setup(t)

	availQuery := `SELECT s.id, s.start_time, s.end_time,
		EXISTS(SELECT 1 FROM bookings b WHERE b.slot_id = s.id AND b.booking_date = $1) AS booked
		FROM slots s ORDER BY s.id`
	rows := sqlmock.NewRows([]string{"id", "start_time", "end_time", "booked"}).
		AddRow(1, "06:00", "07:00", true).
		AddRow(2, "07:00", "08:00", false)
	mock.ExpectQuery(regexp.QuoteMeta(availQuery)).
		WithArgs(date).
		WillReturnRows(rows)

	out, err := a.Availability(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[0].Booked)
	assert.False(t, out[1].Booked)
	assert.Equal(t, "06:00", out[0].StartTime)
}

func TestBook(t *testing.T) {
	t.Parallel()

	t.Run("books a free slot", func(t *testing.T) {
		t.Parallel()
		a, mock := setup(t)

		expectSlotExists(mock, 1, true)
		mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
			WithArgs(1, email, date).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		id, err := a.Book(context.Background(), email, 1, date)
		require.NoError(t, err)
		assert.Equal(t, 42, id)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown slot", func(t *testing.T) {
		t.Parallel()
		a, mock := setup(t)

		expectSlotExists(mock, 999, false)

		_, err := a.Book(context.Background(), email, 999, date)
		assert.ErrorIs(t, err, booking.ErrSlotNotFound)
	})

	t.Run("conflict on same slot and date", func(t *testing.T) {
		t.Parallel()
		a, mock := setup(t)

		expectSlotExists(mock, 1, true)
		mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
			WithArgs(1, email, date).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_slot_date_key"})

		_, err := a.Book(context.Background(), email, 1, date)
		assert.ErrorIs(t, err, booking.ErrAlreadyBooked)
	})

	t.Run("slot vanished before insert", func(t *testing.T) {
		t.Parallel()
		a, mock := setup(t)

		expectSlotExists(mock, 3, true)
		mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
			WithArgs(3, email, date).
			WillReturnError(&pq.Error{Code: "23503"})

		_, err := a.Book(context.Background(), email, 3, date)
		assert.ErrorIs(t, err, booking.ErrSlotNotFound)
	})
}

func TestCancel(t *testing.T) {
	t.Parallel()

	t.Run("owner cancels", func(t *testing.T) {
		t.Parallel()
		a, mock := setup(t)

		mock.ExpectExec(regexp.QuoteMeta(deleteQuery)).
			WithArgs(1, date, email).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, a.Cancel(context.Background(), email, 1, date))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matching booking", func(t *testing.T) {
		t.Parallel()
		a, mock := setup(t)

		mock.ExpectExec(regexp.QuoteMeta(deleteQuery)).
			WithArgs(1, date, email).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := a.Cancel(context.Background(), email, 1, date)
		assert.ErrorIs(t, err, booking.ErrNotFound)
	})

	// someone else's booking matches zero rows because the owner predicate
	// is part of the DELETE, same outcome as no booking at all
	t.Run("not the owner", func(t *testing.T) {
		t.Parallel()
		a, mock := setup(t)

		mock.ExpectExec(regexp.QuoteMeta(deleteQuery)).
			WithArgs(1, date, "intruder@example.com").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := a.Cancel(context.Background(), "intruder@example.com", 1, date)
		assert.ErrorIs(t, err, booking.ErrNotFound)
	})
}

func TestListForUser(t *testing.T) {
	t.Parallel()
	a, mock := setup(t)

	listQuery := `SELECT b.id, b.slot_id, b.booking_date::text, s.start_time, s.end_time
		FROM bookings b
		JOIN slots s ON b.slot_id = s.id
		WHERE b.user_email = $1
		ORDER BY b.booking_date, s.start_time`
	rows := sqlmock.NewRows([]string{"id", "slot_id", "booking_date", "start_time", "end_time"}).
		AddRow(7, 1, "2024-06-01", "06:00", "07:00").
		AddRow(9, 4, "2024-06-02", "09:00", "10:00")
	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs(email).
		WillReturnRows(rows)

	out, err := a.ListForUser(context.Background(), email)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, booking.UserBooking{BookingID: 7, SlotID: 1, BookingDate: "2024-06-01", StartTime: "06:00", EndTime: "07:00"}, out[0])
	assert.Equal(t, 9, out[1].BookingID)
}
