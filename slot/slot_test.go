package slot_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gym-slots/slot"
)

func setup(t *testing.T) (*slot.Accessor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return slot.NewAccessor(db), mock
}

func TestSeedIfEmpty(t *testing.T) {
	t.Parallel()

	countQuery := regexp.QuoteMeta(`SELECT COUNT(*) FROM slots`)
	insertQuery := regexp.QuoteMeta(`INSERT INTO slots (start_time, end_time) VALUES ($1, $2)`)

	t.Run("seeds empty catalog", func(t *testing.T) {
		t.Parallel()
		a, mock := setup(t)

		mock.ExpectBegin()
		mock.ExpectQuery(countQuery).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		for _, s := range slot.Defaults {
			mock.ExpectExec(insertQuery).
				WithArgs(s.StartTime, s.EndTime).
				WillReturnResult(sqlmock.NewResult(1, 1))
		}
		mock.ExpectCommit()

		require.NoError(t, a.SeedIfEmpty(context.Background(), slot.Defaults))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips populated catalog", func(t *testing.T) {
		t.Parallel()
		a, mock := setup(t)

		mock.ExpectBegin()
		mock.ExpectQuery(countQuery).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
		mock.ExpectRollback()

		require.NoError(t, a.SeedIfEmpty(context.Background(), slot.Defaults))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestList(t *testing.T) {
	t.Parallel()
	a, mock := setup(t)

	rows := sqlmock.NewRows([]string{"id", "start_time", "end_time"}).
		AddRow(1, "06:00", "07:00").
		AddRow(2, "07:00", "08:00")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, start_time, end_time FROM slots ORDER BY id`)).
		WillReturnRows(rows)

	slots, err := a.List(context.Background())
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, slot.Slot{ID: 1, StartTime: "06:00", EndTime: "07:00"}, slots[0])
	assert.Equal(t, slot.Slot{ID: 2, StartTime: "07:00", EndTime: "08:00"}, slots[1])
}

func TestExists(t *testing.T) {
	t.Parallel()
	a, mock := setup(t)

	existsQuery := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM slots WHERE id = $1)`)

	mock.ExpectQuery(existsQuery).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	ok, err := a.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery(existsQuery).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	ok, err = a.Exists(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDefaults(t *testing.T) {
	t.Parallel()
	assert.Len(t, slot.Defaults, 7)
	assert.Equal(t, "06:00", slot.Defaults[0].StartTime)
	assert.Equal(t, "20:00", slot.Defaults[6].EndTime)
}
