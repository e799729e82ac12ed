package controllers

import (
	"time"

	"github.com/Alsaadah1/Hotel-Mate-sub000/constants"
	"github.com/Alsaadah1/Hotel-Mate-sub000/dto"
	"github.com/Alsaadah1/Hotel-Mate-sub000/models"
	"github.com/Alsaadah1/Hotel-Mate-sub000/response"
	"github.com/Alsaadah1/Hotel-Mate-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RevenueController struct {
	DB *gorm.DB
}

func NewRevenueController(db *gorm.DB) RevenueController {
	return RevenueController{DB: db}
}

// resolveOwnerID xác định chủ mà user hiện tại quản lý doanh thu
func (r RevenueController) resolveOwnerID(c *gin.Context) (uint, bool) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	if currentUserRole == constants.RoleOwner {
		return currentUserID, true
	}
	if currentUserRole == constants.RoleStaff {
		var staff models.User
		if err := r.DB.First(&staff, currentUserID).Error; err != nil || staff.OwnerID == nil {
			return 0, false
		}
		return *staff.OwnerID, true
	}
	return 0, false
}

// GetTotalRevenue trả tổng quan doanh thu của chủ: tổng, tháng này, tháng
// trước, tuần này và doanh thu từng tháng trong 12 tháng gần nhất
func (r RevenueController) GetTotalRevenue(c *gin.Context) {
	ownerID, ok := r.resolveOwnerID(c)
	if !ok {
		response.Forbidden(c)
		return
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	startOfLastMonth := startOfMonth.AddDate(0, -1, 0)

	// Tuần tính từ thứ hai
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	startOfWeek := services.NormalizeDate(now).AddDate(0, 0, -(weekday - 1))

	var totalRevenue int64
	if err := r.DB.Model(&models.OwnerRevenue{}).
		Where("user_id = ?", ownerID).
		Select("COALESCE(SUM(revenue), 0)").
		Scan(&totalRevenue).Error; err != nil {
		response.ServerError(c)
		return
	}

	var currentMonthRevenue int64
	if err := r.DB.Model(&models.OwnerRevenue{}).
		Where("user_id = ? AND date >= ?", ownerID, startOfMonth).
		Select("COALESCE(SUM(revenue), 0)").
		Scan(&currentMonthRevenue).Error; err != nil {
		response.ServerError(c)
		return
	}

	var lastMonthRevenue int64
	if err := r.DB.Model(&models.OwnerRevenue{}).
		Where("user_id = ? AND date >= ? AND date < ?", ownerID, startOfLastMonth, startOfMonth).
		Select("COALESCE(SUM(revenue), 0)").
		Scan(&lastMonthRevenue).Error; err != nil {
		response.ServerError(c)
		return
	}

	var currentWeekRevenue int64
	if err := r.DB.Model(&models.OwnerRevenue{}).
		Where("user_id = ? AND date >= ?", ownerID, startOfWeek).
		Select("COALESCE(SUM(revenue), 0)").
		Scan(&currentWeekRevenue).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Doanh thu 12 tháng gần nhất
	monthlyRevenue := make([]dto.MonthRevenue, 0, 12)
	for i := 11; i >= 0; i-- {
		monthStart := startOfMonth.AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		var row struct {
			Revenue      int64
			BookingCount int
		}
		if err := r.DB.Model(&models.OwnerRevenue{}).
			Where("user_id = ? AND date >= ? AND date < ?", ownerID, monthStart, monthEnd).
			Select("COALESCE(SUM(revenue), 0) AS revenue, COALESCE(SUM(booking_count), 0) AS booking_count").
			Scan(&row).Error; err != nil {
			response.ServerError(c)
			return
		}

		monthlyRevenue = append(monthlyRevenue, dto.MonthRevenue{
			Month:        monthStart.Format("01/2006"),
			Revenue:      row.Revenue,
			BookingCount: row.BookingCount,
		})
	}

	response.Success(c, dto.RevenueResponse{
		TotalRevenue:        totalRevenue,
		CurrentMonthRevenue: currentMonthRevenue,
		LastMonthRevenue:    lastMonthRevenue,
		CurrentWeekRevenue:  currentWeekRevenue,
		MonthlyRevenue:      monthlyRevenue,
	})
}

// GetTodayRevenue trả doanh thu hôm nay của chủ
func (r RevenueController) GetTodayRevenue(c *gin.Context) {
	ownerID, ok := r.resolveOwnerID(c)
	if !ok {
		response.Forbidden(c)
		return
	}

	today := services.NormalizeDate(time.Now())

	var revenue models.OwnerRevenue
	err := r.DB.Preload("User").
		Where("user_id = ? AND date = ?", ownerID, today).
		First(&revenue).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// Hôm nay chưa có booking được duyệt
			response.Success(c, dto.OwnerRevenueResponse{
				Date:         today.Format(services.DateLayout),
				Revenue:      0,
				BookingCount: 0,
			})
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToRevenueResponse(revenue))
}

// GetOwnerRevenue trả doanh thu theo ngày của chủ trong một khoảng thời gian
func (r RevenueController) GetOwnerRevenue(c *gin.Context) {
	ownerID, ok := r.resolveOwnerID(c)
	if !ok {
		response.Forbidden(c)
		return
	}

	tx := r.DB.Preload("User").Where("user_id = ?", ownerID)

	if fromStr := c.Query("fromDate"); fromStr != "" {
		from, err := services.ParseBookingDate(fromStr)
		if err != nil {
			response.BadRequest(c, "Ngày bắt đầu không hợp lệ")
			return
		}
		tx = tx.Where("date >= ?", from)
	}
	if toStr := c.Query("toDate"); toStr != "" {
		to, err := services.ParseBookingDate(toStr)
		if err != nil {
			response.BadRequest(c, "Ngày kết thúc không hợp lệ")
			return
		}
		tx = tx.Where("date <= ?", to)
	}

	var revenues []models.OwnerRevenue
	if err := tx.Order("date DESC").Find(&revenues).Error; err != nil {
		response.ServerError(c)
		return
	}

	revenueResponses := make([]dto.OwnerRevenueResponse, 0, len(revenues))
	for _, revenue := range revenues {
		revenueResponses = append(revenueResponses, convertToRevenueResponse(revenue))
	}

	response.Success(c, revenueResponses)
}

func convertToRevenueResponse(revenue models.OwnerRevenue) dto.OwnerRevenueResponse {
	return dto.OwnerRevenueResponse{
		ID:           revenue.ID,
		Date:         revenue.Date.Format(services.DateLayout),
		BookingCount: revenue.BookingCount,
		Revenue:      revenue.Revenue,
		User: dto.RevenueOwner{
			ID:          revenue.User.ID,
			Name:        revenue.User.Name,
			Email:       revenue.User.Email,
			PhoneNumber: revenue.User.PhoneNumber,
		},
	}
}
