package validator

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/Alsaadah1/Hotel-Mate-sub000/constants"
	"github.com/Alsaadah1/Hotel-Mate-sub000/dto"
	"github.com/Alsaadah1/Hotel-Mate-sub000/errors"
	"github.com/Alsaadah1/Hotel-Mate-sub000/models"

	validatorv10 "github.com/go-playground/validator/v10"
)

var validate = validatorv10.New()

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	// Đếm ký tự chứ không đếm byte, mật khẩu tiếng Việt có dấu nhiều byte hơn
	if utf8.RuneCountInString(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeValidation, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < constants.RoleCustomer || user.Role > constants.RoleStaff {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateRoom validate thông tin phòng theo tag trên RoomRequest
func ValidateRoom(room *dto.RoomRequest) error {
	if err := validate.Struct(room); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Thông tin phòng không hợp lệ", err)
	}
	if room.Capacity == 0 {
		room.Capacity = 2
	}
	return nil
}

// ValidateBookingRequest validate yêu cầu đặt phòng và trả về khoảng ngày đã parse.
// Mọi lỗi ở đây chặn request trước khi chạm tới bước kiểm tra trùng lịch.
func ValidateBookingRequest(req *dto.CreateBookingRequest) (time.Time, time.Time, error) {
	var zero time.Time

	if req.RoomID == 0 {
		return zero, zero, errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}
	if req.CustomerID == 0 {
		return zero, zero, errors.NewAppError(errors.ErrCodeRequiredField, "ID khách không được để trống", nil)
	}
	if req.GuestCount < 1 {
		return zero, zero, errors.NewAppError(errors.ErrCodeInvalidGuestNum, "Số khách phải lớn hơn 0", nil)
	}

	checkIn, err := time.Parse("02/01/2006", req.CheckInDate)
	if err != nil {
		return zero, zero, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOut, err := time.Parse("02/01/2006", req.CheckOutDate)
	if err != nil {
		return zero, zero, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	checkIn = time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	checkOut = time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)

	if !checkOut.After(checkIn) {
		return zero, zero, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return checkIn, checkOut, nil
}

// ValidateBookingStatus validate trạng thái duyệt/từ chối
func ValidateBookingStatus(status string) error {
	if status != constants.BookingStatusApproved && status != constants.BookingStatusRejected {
		return errors.NewAppError(errors.ErrCodeValidation, "Trạng thái phải là Approved hoặc Rejected", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
