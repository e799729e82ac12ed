package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := NewAppError(ErrCodeBookingConflict, "Phòng không còn trống", nil)
	assert.Equal(t, "[BOOKING_CONFLICT] Phòng không còn trống", err.Error())

	wrapped := NewAppError(ErrCodeDBError, "Không đọc được booking", fmt.Errorf("connection refused"))
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestGetAppError(t *testing.T) {
	appErr := NewAppError(ErrCodeBookingTerminal, "Booking đã kết thúc", nil)

	got := GetAppError(appErr)
	require.NotNil(t, got)
	assert.Equal(t, ErrCodeBookingTerminal, got.Code)

	// Bọc trong error khác vẫn lấy ra được
	wrapped := fmt.Errorf("xử lý booking: %w", appErr)
	got = GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, ErrCodeBookingTerminal, got.Code)

	assert.Nil(t, GetAppError(fmt.Errorf("lỗi thường")))
	assert.Nil(t, GetAppError(nil))
}

func TestIsCode(t *testing.T) {
	err := NewAppError(ErrCodeRoomNotFound, "Không tìm thấy phòng", nil)
	assert.True(t, IsCode(err, ErrCodeRoomNotFound))
	assert.False(t, IsCode(err, ErrCodeBookingConflict))
	assert.False(t, IsCode(nil, ErrCodeRoomNotFound))
}
