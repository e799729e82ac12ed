package validator

import (
	"testing"
	"time"

	"github.com/Alsaadah1/Hotel-Mate-sub000/constants"
	"github.com/Alsaadah1/Hotel-Mate-sub000/dto"
	"github.com/Alsaadah1/Hotel-Mate-sub000/errors"
	"github.com/Alsaadah1/Hotel-Mate-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBookingRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomID:       1,
		CustomerID:   2,
		CheckInDate:  "10/01/2024",
		CheckOutDate: "13/01/2024",
		GuestCount:   2,
	}
}

func TestValidateBookingRequest(t *testing.T) {
	req := validBookingRequest()

	checkIn, checkOut, err := ValidateBookingRequest(&req)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), checkIn)
	assert.Equal(t, time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), checkOut)
}

func TestValidateBookingRequestMissingFields(t *testing.T) {
	req := validBookingRequest()
	req.RoomID = 0
	_, _, err := ValidateBookingRequest(&req)
	assert.True(t, errors.IsCode(err, errors.ErrCodeRequiredField))

	req = validBookingRequest()
	req.CustomerID = 0
	_, _, err = ValidateBookingRequest(&req)
	assert.True(t, errors.IsCode(err, errors.ErrCodeRequiredField))
}

func TestValidateBookingRequestGuestCount(t *testing.T) {
	req := validBookingRequest()
	req.GuestCount = 0
	_, _, err := ValidateBookingRequest(&req)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidGuestNum))

	req = validBookingRequest()
	req.GuestCount = -3
	_, _, err = ValidateBookingRequest(&req)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidGuestNum))
}

func TestValidateBookingRequestDates(t *testing.T) {
	req := validBookingRequest()
	req.CheckInDate = "2024-01-10"
	_, _, err := ValidateBookingRequest(&req)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidFormat))

	req = validBookingRequest()
	req.CheckOutDate = "không phải ngày"
	_, _, err = ValidateBookingRequest(&req)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidFormat))

	// Trả phòng trước ngày nhận phòng
	req = validBookingRequest()
	req.CheckInDate = "13/01/2024"
	req.CheckOutDate = "10/01/2024"
	_, _, err = ValidateBookingRequest(&req)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidDateRange))

	// Trả phòng cùng ngày nhận phòng cũng không hợp lệ
	req = validBookingRequest()
	req.CheckOutDate = req.CheckInDate
	_, _, err = ValidateBookingRequest(&req)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidDateRange))
}

func TestValidateBookingStatus(t *testing.T) {
	assert.NoError(t, ValidateBookingStatus(constants.BookingStatusApproved))
	assert.NoError(t, ValidateBookingStatus(constants.BookingStatusRejected))

	err := ValidateBookingStatus(constants.BookingStatusPending)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	err = ValidateBookingStatus("approved")
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	err = ValidateBookingStatus("")
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
}

func TestValidateUser(t *testing.T) {
	user := models.User{
		Email:       "khach@example.com",
		Password:    "matkhau123",
		PhoneNumber: "0912345678",
		Role:        constants.RoleCustomer,
	}
	assert.NoError(t, ValidateUser(&user))

	user.Email = ""
	err := ValidateUser(&user)
	assert.True(t, errors.IsCode(err, errors.ErrCodeRequiredField))

	user.Email = "không phải email"
	err = ValidateUser(&user)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidEmail))

	user.Email = "khach@example.com"
	user.Password = "12345"
	err = ValidateUser(&user)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	// Bốn ký tự có dấu chiếm sáu byte, vẫn phải bị chặn theo số ký tự
	user.Password = "ngắn"
	err = ValidateUser(&user)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	// Sáu ký tự có dấu thì hợp lệ dù nhiều hơn sáu byte
	user.Password = "mậtkhẩu"
	assert.NoError(t, ValidateUser(&user))

	user.Password = "matkhau123"
	user.Role = 9
	err = ValidateUser(&user)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRole))
}

func TestValidateRoom(t *testing.T) {
	room := dto.RoomRequest{
		RoomName: "Phòng Deluxe 101",
		Price:    450000,
	}
	require.NoError(t, ValidateRoom(&room))
	// Capacity không truyền thì mặc định 2
	assert.Equal(t, 2, room.Capacity)

	room = dto.RoomRequest{RoomName: "", Price: 450000}
	assert.Error(t, ValidateRoom(&room))

	room = dto.RoomRequest{RoomName: "Phòng 102", Price: 0}
	assert.Error(t, ValidateRoom(&room))

	room = dto.RoomRequest{RoomName: "Phòng 103", Price: -5}
	assert.Error(t, ValidateRoom(&room))
}
