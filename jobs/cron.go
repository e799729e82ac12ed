package jobs

import (
	"time"

	"github.com/Alsaadah1/Hotel-Mate-sub000/constants"
	"github.com/Alsaadah1/Hotel-Mate-sub000/models"
	"github.com/Alsaadah1/Hotel-Mate-sub000/services"
	"github.com/Alsaadah1/Hotel-Mate-sub000/services/logger"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var jobLogger logger.Logger = logger.NewDefaultLogger(logger.InfoLevel)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, db *gorm.DB, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày: booking còn Pending khi đã qua ngày
	// nhận phòng thì tự động từ chối để trả lịch cho phòng
	_, err := c.AddFunc("0 0 * * *", func() {
		jobLogger.Info("Đang dọn các booking chờ duyệt quá hạn lúc: %v", time.Now())
		if err := RejectStalePendingBookings(db, m); err != nil {
			jobLogger.Error("Lỗi khi dọn booking quá hạn: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	jobLogger.Info("Cron jobs initialized successfully")
	return nil
}

// RejectStalePendingBookings từ chối các booking Pending đã qua ngày nhận phòng
func RejectStalePendingBookings(db *gorm.DB, m *melody.Melody) error {
	var stale []models.Booking
	if err := db.Where("status = ? AND check_in_date < ?",
		constants.BookingStatusPending, services.NormalizeDate(time.Now())).
		Find(&stale).Error; err != nil {
		return err
	}

	for _, booking := range stale {
		updated, err := services.ChangeBookingStatus(db, booking.ID, constants.BookingStatusRejected)
		if err != nil {
			jobLogger.Error("Không từ chối được booking %d: %v", booking.ID, err)
			continue
		}

		services.BroadcastBookingEvent(m, services.BookingEvent{
			Type:      "booking_status",
			BookingID: updated.ID,
			RoomName:  updated.RoomName,
			OwnerID:   updated.OwnerID,
			Status:    updated.Status,
			Message:   "Booking chờ duyệt quá hạn đã bị từ chối tự động",
		})
	}

	if len(stale) > 0 {
		jobLogger.Info("Đã từ chối tự động %d booking quá hạn", len(stale))
	}
	return nil
}
