package services

import (
	"fmt"
	"time"

	"github.com/Alsaadah1/Hotel-Mate-sub000/constants"
	"github.com/Alsaadah1/Hotel-Mate-sub000/errors"
	"github.com/Alsaadah1/Hotel-Mate-sub000/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DateLayout là định dạng ngày dùng chung cho request đặt phòng
const DateLayout = "02/01/2006"

// durationNights map nhãn thời lượng cũ sang số đêm, hỗ trợ các booking
// tạo từ giỏ hàng không có ngày cụ thể
var durationNights = map[string]int{
	"1 Day":    1,
	"1 Night":  1,
	"2 Nights": 2,
	"3 Days":   3,
	"3 Nights": 3,
	"1 Week":   7,
}

// NightsFromLabel đổi nhãn thời lượng sang số đêm, nhãn lạ tính 1 đêm
func NightsFromLabel(label string) int {
	if nights, ok := durationNights[label]; ok {
		return nights
	}
	return 1
}

// NormalizeDate đưa thời điểm về 0h UTC để tránh lệch múi giờ khi tính đêm
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseBookingDate parse chuỗi ngày dd/MM/yyyy về 0h UTC
func ParseBookingDate(dateStr string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeDate(parsed), nil
}

// NightsBetween tính số đêm giữa hai ngày. Chênh lệch <= 0 tính 1 đêm,
// đây chỉ là sàn phòng hờ: controller đã chặn checkOut <= checkIn từ trước.
func NightsBetween(checkIn, checkOut time.Time) int {
	nights := int(NormalizeDate(checkOut).Sub(NormalizeDate(checkIn)).Hours() / 24)
	if nights <= 0 {
		nights = 1
	}
	return nights
}

// TotalCost tính tổng tiền = giá một đêm x số đêm. Tiền giữ theo số nguyên
// đơn vị nhỏ nhất nên phép nhân không bị trôi số thập phân.
func TotalCost(nightlyPrice int64, nights int) int64 {
	return nightlyPrice * int64(nights)
}

// IntervalsOverlap kiểm tra hai khoảng nửa mở [a1,a2) và [b1,b2) có giao nhau không.
// Trả phòng ngày X và nhận phòng ngày X không tính là trùng.
func IntervalsOverlap(a1, a2, b1, b2 time.Time) bool {
	return a1.Before(b2) && b1.Before(a2)
}

// HasConflict kiểm tra khoảng [checkIn, checkOut) có trùng với booking nào
// chưa bị từ chối của phòng không. excludeBookingID (0 = bỏ qua) loại booking
// đang được sửa ra khỏi tập so sánh.
func HasConflict(db *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	var count int64
	tx := db.Model(&models.Booking{}).
		Where("room_id = ? AND status <> ? AND check_in_date < ? AND check_out_date > ?",
			roomID, constants.BookingStatusRejected, checkOut, checkIn)
	if excludeBookingID != 0 {
		tx = tx.Where("id <> ?", excludeBookingID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Không kiểm tra được lịch phòng", err)
	}
	return count > 0, nil
}

// CreateBooking tạo booking mới ở trạng thái Pending. Toàn bộ kiểm tra trùng
// lịch và insert chạy trong một transaction, khóa dòng phòng (FOR UPDATE) để
// hai request đặt cùng phòng không thể cùng qua bước kiểm tra.
func CreateBooking(db *gorm.DB, roomID, customerID uint, checkIn, checkOut time.Time, guestCount int) (*models.Booking, error) {
	var booking models.Booking

	err := db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Không đọc được thông tin phòng", err)
		}

		conflict, err := HasConflict(tx, roomID, checkIn, checkOut, 0)
		if err != nil {
			return err
		}
		if conflict {
			return errors.NewAppError(errors.ErrCodeBookingConflict,
				fmt.Sprintf("Phòng không còn trống từ %s đến %s",
					checkIn.Format(DateLayout), checkOut.Format(DateLayout)), nil)
		}

		nights := NightsBetween(checkIn, checkOut)

		booking = models.Booking{
			RoomID:       room.RoomId,
			RoomName:     room.RoomName,
			Avatar:       room.Avatar,
			OwnerID:      room.UserID,
			CustomerID:   customerID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			GuestCount:   guestCount,
			TotalCost:    TotalCost(room.Price, nights),
			Status:       constants.BookingStatusPending,
		}

		if err := tx.Create(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không tạo được booking", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ChangeBookingStatus chuyển booking Pending sang Approved hoặc Rejected.
// Trạng thái kết thúc không được chuyển tiếp. Duyệt booking thì cộng doanh thu
// ngày cho chủ phòng.
func ChangeBookingStatus(db *gorm.DB, bookingID uint, newStatus string) (*models.Booking, error) {
	if newStatus != constants.BookingStatusApproved && newStatus != constants.BookingStatusRejected {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Trạng thái không hợp lệ", nil)
	}

	var booking models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeBookingNotFound, "Không tìm thấy booking", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Không đọc được booking", err)
		}

		if constants.IsTerminalBookingStatus(booking.Status) {
			return errors.NewAppError(errors.ErrCodeBookingTerminal,
				"Booking đã "+statusLabel(booking.Status)+", không thể đổi trạng thái", nil)
		}

		booking.Status = newStatus
		booking.UpdatedAt = time.Now()
		if err := tx.Save(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được booking", err)
		}

		if newStatus == constants.BookingStatusApproved {
			if err := addOwnerRevenue(tx, booking.OwnerID, booking.TotalCost); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func statusLabel(status string) string {
	switch status {
	case constants.BookingStatusApproved:
		return "được duyệt"
	case constants.BookingStatusRejected:
		return "bị từ chối"
	default:
		return "chờ duyệt"
	}
}

// addOwnerRevenue cộng dồn doanh thu theo ngày cho chủ phòng
func addOwnerRevenue(tx *gorm.DB, ownerID uint, amount int64) error {
	today := NormalizeDate(time.Now())

	var revenue models.OwnerRevenue
	err := tx.Where("user_id = ? AND date = ?", ownerID, today).First(&revenue).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return errors.NewAppError(errors.ErrCodeDBError, "Không đọc được doanh thu", err)
		}
		revenue = models.OwnerRevenue{
			UserID:       ownerID,
			Date:         today,
			Revenue:      amount,
			BookingCount: 1,
		}
		if err := tx.Create(&revenue).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không tạo được doanh thu", err)
		}
		return nil
	}

	if err := tx.Model(&revenue).Updates(map[string]interface{}{
		"revenue":       revenue.Revenue + amount,
		"booking_count": revenue.BookingCount + 1,
	}).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được doanh thu", err)
	}
	return nil
}

// RoomBookedRanges trả các khoảng ngày chưa bị từ chối của phòng, dùng cho
// lịch hiển thị phía client
func RoomBookedRanges(db *gorm.DB, roomID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := db.Where("room_id = ? AND status <> ?", roomID, constants.BookingStatusRejected).
		Order("check_in_date ASC").
		Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được lịch phòng", err)
	}
	return bookings, nil
}
