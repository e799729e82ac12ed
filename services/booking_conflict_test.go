package services

import (
	"fmt"
	"testing"

	"github.com/Alsaadah1/Hotel-Mate-sub000/constants"
	"github.com/Alsaadah1/Hotel-Mate-sub000/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestHasConflictIgnoresRejectedBookings(t *testing.T) {
	db, mock := newMockDB(t)

	checkIn := date(2024, 1, 10)
	checkOut := date(2024, 1, 13)

	// Câu đếm phải loại booking Rejected ra khỏi tập so sánh
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings" WHERE room_id = \$1 AND status <> \$2 AND check_in_date < \$3 AND check_out_date > \$4`).
		WithArgs(int64(7), constants.BookingStatusRejected, checkOut, checkIn).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	conflict, err := HasConflict(db, 7, checkIn, checkOut, 0)
	require.NoError(t, err)
	assert.False(t, conflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasConflictReportsOverlap(t *testing.T) {
	db, mock := newMockDB(t)

	checkIn := date(2024, 1, 10)
	checkOut := date(2024, 1, 13)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings" WHERE room_id = \$1 AND status <> \$2`).
		WithArgs(int64(7), constants.BookingStatusRejected, checkOut, checkIn).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	conflict, err := HasConflict(db, 7, checkIn, checkOut, 0)
	require.NoError(t, err)
	assert.True(t, conflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasConflictExcludesEditedBooking(t *testing.T) {
	db, mock := newMockDB(t)

	checkIn := date(2024, 1, 10)
	checkOut := date(2024, 1, 13)

	// Booking đang sửa phải bị loại khỏi tập so sánh qua mệnh đề id <>
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings" WHERE .*status <> \$2.* AND id <> \$5`).
		WithArgs(int64(7), constants.BookingStatusRejected, checkOut, checkIn, int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	conflict, err := HasConflict(db, 7, checkIn, checkOut, 42)
	require.NoError(t, err)
	assert.False(t, conflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasConflictWrapsDBError(t *testing.T) {
	db, mock := newMockDB(t)

	checkIn := date(2024, 1, 10)
	checkOut := date(2024, 1, 13)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnError(fmt.Errorf("connection refused"))

	_, err := HasConflict(db, 7, checkIn, checkOut, 0)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDBError))
}

func TestChangeBookingStatusBlocksTerminal(t *testing.T) {
	db, mock := newMockDB(t)

	// Booking đã Approved, đổi trạng thái phải bị chặn và transaction rollback
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE "bookings"\."id" = \$1.*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "owner_id", "customer_id", "total_cost", "status"}).
			AddRow(5, 7, 1, 2, 135, constants.BookingStatusApproved))
	mock.ExpectRollback()

	_, err := ChangeBookingStatus(db, 5, constants.BookingStatusRejected)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBookingTerminal))
	assert.NoError(t, mock.ExpectationsWereMet())
}
