package controllers

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Alsaadah1/Hotel-Mate-sub000/config"
	"github.com/Alsaadah1/Hotel-Mate-sub000/constants"
	"github.com/Alsaadah1/Hotel-Mate-sub000/dto"
	apperrors "github.com/Alsaadah1/Hotel-Mate-sub000/errors"
	"github.com/Alsaadah1/Hotel-Mate-sub000/models"
	"github.com/Alsaadah1/Hotel-Mate-sub000/response"
	"github.com/Alsaadah1/Hotel-Mate-sub000/services"
	"github.com/Alsaadah1/Hotel-Mate-sub000/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type BookingController struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Melody *melody.Melody
}

func NewBookingController(db *gorm.DB, redisCli *redis.Client, m *melody.Melody) BookingController {
	return BookingController{
		DB:     db,
		Redis:  redisCli,
		Melody: m,
	}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID: booking.ID,
		Customer: dto.ActorResponse{
			Name:        booking.Customer.Name,
			Email:       booking.Customer.Email,
			PhoneNumber: booking.Customer.PhoneNumber,
		},
		Room: dto.BookingRoomResponse{
			ID:       booking.RoomID,
			RoomName: booking.RoomName,
			Price:    booking.Room.Price,
			Avatar:   booking.Avatar,
		},
		CheckInDate:  booking.CheckInDate.Format(services.DateLayout),
		CheckOutDate: booking.CheckOutDate.Format(services.DateLayout),
		GuestCount:   booking.GuestCount,
		Nights:       services.NightsBetween(booking.CheckInDate, booking.CheckOutDate),
		TotalCost:    booking.TotalCost,
		Status:       booking.Status,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
	}
}

// renderAppError đổi AppError thành HTTP response tương ứng
func renderAppError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}
	switch appErr.Code {
	case apperrors.ErrCodeBookingConflict:
		response.Conflict(c, appErr.Message)
	case apperrors.ErrCodeRoomNotFound, apperrors.ErrCodeBookingNotFound,
		apperrors.ErrCodeUserNotFound, apperrors.ErrCodeDBNotFound:
		response.NotFound(c)
	case apperrors.ErrCodeDBError:
		response.ServerError(c)
	default:
		response.BadRequest(c, appErr.Message)
	}
}

// invalidateBookingCache xóa cache danh sách booking sau khi ghi
func (b BookingController) invalidateBookingCache(ownerID, customerID uint) {
	if b.Redis == nil {
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, b.Redis, "bookings:*"); err != nil {
		log.Printf("Lỗi khi xóa cache bookings: %v", err)
	}
	_ = services.DeleteFromRedis(config.Ctx, b.Redis, fmt.Sprintf("bookings:owner:%d", ownerID))
	_ = services.DeleteFromRedis(config.Ctx, b.Redis, fmt.Sprintf("bookings:customer:%d", customerID))
}

// CreateBooking nhận yêu cầu đặt phòng của khách, kiểm tra trùng lịch và lưu
// booking ở trạng thái Pending
func (b BookingController) CreateBooking(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")

	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	// Có token thì lấy khách từ token, không cho đặt hộ người khác
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, _, err := GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			return
		}
		request.CustomerID = userID
	}

	checkIn, checkOut, err := validator.ValidateBookingRequest(&request)
	if err != nil {
		renderAppError(c, err)
		return
	}

	var customer models.User
	if err := b.DB.First(&customer, request.CustomerID).Error; err != nil {
		response.NotFound(c)
		return
	}

	booking, err := services.CreateBooking(b.DB, request.RoomID, request.CustomerID, checkIn, checkOut, request.GuestCount)
	if err != nil {
		renderAppError(c, err)
		return
	}

	if err := b.DB.Preload("Room").Preload("Customer").First(booking, booking.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.BroadcastBookingEvent(b.Melody, services.BookingEvent{
		Type:      "booking_created",
		BookingID: booking.ID,
		RoomName:  booking.RoomName,
		OwnerID:   booking.OwnerID,
		Status:    booking.Status,
	})

	if customer.Email != "" {
		if err := services.SendBookingEmail(customer.Email, booking.ID, booking.RoomName,
			booking.TotalCost, request.CheckInDate, request.CheckOutDate); err != nil {
			log.Println("Gửi email không thành công:", err)
		}
	}

	b.invalidateBookingCache(booking.OwnerID, booking.CustomerID)

	response.Success(c, convertToBookingResponse(*booking))
}

// ChangeBookingStatus cho chủ phòng/nhân viên duyệt hoặc từ chối booking.
// Trạng thái kết thúc không đổi lại được.
func (b BookingController) ChangeBookingStatus(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, currentUserRole, err := GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var req dto.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateBookingStatus(req.Status); err != nil {
		renderAppError(c, err)
		return
	}

	var booking models.Booking
	if err := b.DB.First(&booking, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Chỉ chủ phòng hoặc nhân viên của chủ đó được duyệt
	if !canManageBooking(b.DB, currentUserID, currentUserRole, booking.OwnerID) {
		response.Forbidden(c)
		return
	}

	updated, err := services.ChangeBookingStatus(b.DB, req.ID, req.Status)
	if err != nil {
		renderAppError(c, err)
		return
	}

	services.BroadcastBookingEvent(b.Melody, services.BookingEvent{
		Type:      "booking_status",
		BookingID: updated.ID,
		RoomName:  updated.RoomName,
		OwnerID:   updated.OwnerID,
		Status:    updated.Status,
	})

	b.invalidateBookingCache(updated.OwnerID, updated.CustomerID)

	response.Success(c, gin.H{"message": "Trạng thái booking đã được cập nhật", "status": updated.Status})
}

// canManageBooking kiểm tra user hiện tại có quyền quản lý booking của chủ ownerID không
func canManageBooking(db *gorm.DB, userID uint, userRole int, ownerID uint) bool {
	if userRole == constants.RoleOwner {
		return userID == ownerID
	}
	if userRole == constants.RoleStaff {
		var staff models.User
		if err := db.First(&staff, userID).Error; err != nil {
			return false
		}
		return staff.OwnerID != nil && *staff.OwnerID == ownerID
	}
	return false
}

// GetBookings trả danh sách booking cho chủ phòng/nhân viên, có cache và filter
func (b BookingController) GetBookings(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, currentUserRole, err := GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	// Nhân viên xem theo chủ của mình
	ownerID := currentUserID
	if currentUserRole == constants.RoleStaff {
		var staff models.User
		if err := b.DB.First(&staff, currentUserID).Error; err != nil || staff.OwnerID == nil {
			response.Forbidden(c)
			return
		}
		ownerID = *staff.OwnerID
	} else if currentUserRole != constants.RoleOwner {
		response.Forbidden(c)
		return
	}

	cacheKey := fmt.Sprintf("bookings:owner:%d", ownerID)

	var allBookings []models.Booking
	if err := services.GetFromRedis(config.Ctx, b.Redis, cacheKey, &allBookings); err != nil || len(allBookings) == 0 {
		// Không có cache thì truy vấn từ DB
		if err := b.DB.Preload("Room").Preload("Customer").
			Where("owner_id = ?", ownerID).
			Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, b.Redis, cacheKey, allBookings, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách booking vào Redis: %v", err)
		}
	}

	// Lấy các tham số filter từ query
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	roomStr := c.Query("roomId")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	// Áp dụng bộ lọc
	filteredBookings := make([]models.Booking, 0)
	for _, booking := range allBookings {
		if statusFilter != "" && booking.Status != statusFilter {
			continue
		}
		if roomStr != "" {
			roomID, err := strconv.Atoi(roomStr)
			if err == nil && booking.RoomID != uint(roomID) {
				continue
			}
		}
		filteredBookings = append(filteredBookings, booking)
	}

	totalFiltered := len(filteredBookings)

	// Xếp theo update mới nhất
	sort.Slice(filteredBookings, func(i, j int) bool {
		return filteredBookings[i].UpdatedAt.After(filteredBookings[j].UpdatedAt)
	})

	// Áp dụng phân trang
	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredBookings = []models.Booking{}
	} else if end > totalFiltered {
		filteredBookings = filteredBookings[start:]
	} else {
		filteredBookings = filteredBookings[start:end]
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(filteredBookings))
	for _, booking := range filteredBookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, totalFiltered)
}

// GetBookingDetail trả chi tiết một booking
func (b BookingController) GetBookingDetail(c *gin.Context) {
	bookingId := c.Param("id")

	var booking models.Booking
	if err := b.DB.Preload("Room").Preload("Customer").
		Where("id = ?", bookingId).
		First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

// GetBookingsByCustomer trả lịch sử đặt phòng của khách đang đăng nhập
func (b BookingController) GetBookingsByCustomer(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, _, err := GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var totalBookings int64
	if err := b.DB.Model(&models.Booking{}).Where("customer_id = ?", currentUserID).Count(&totalBookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	result := b.DB.Preload("Room").Preload("Customer").
		Where("customer_id = ?", currentUserID).
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&bookings)

	if result.Error != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, int(totalBookings))
}

// QuoteBooking báo giá một kỳ nghỉ: nhận khoảng ngày hoặc nhãn thời lượng cũ,
// trả số đêm và tổng tiền, không lưu gì
func (b BookingController) QuoteBooking(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := b.DB.First(&room, req.RoomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var nights int
	if req.CheckInDate != "" && req.CheckOutDate != "" {
		checkIn, err := services.ParseBookingDate(req.CheckInDate)
		if err != nil {
			response.BadRequest(c, "Ngày nhận phòng không hợp lệ")
			return
		}
		checkOut, err := services.ParseBookingDate(req.CheckOutDate)
		if err != nil {
			response.BadRequest(c, "Ngày trả phòng không hợp lệ")
			return
		}
		if !checkOut.After(checkIn) {
			response.BadRequest(c, "Ngày trả phòng phải sau ngày nhận phòng")
			return
		}
		nights = services.NightsBetween(checkIn, checkOut)
	} else if req.Duration != "" {
		// Giỏ hàng cũ chỉ có nhãn thời lượng, không có ngày
		nights = services.NightsFromLabel(req.Duration)
	} else {
		response.BadRequest(c, "Cần khoảng ngày hoặc thời lượng")
		return
	}

	response.Success(c, dto.QuoteResponse{
		RoomID:    room.RoomId,
		Price:     room.Price,
		Nights:    nights,
		TotalCost: services.TotalCost(room.Price, nights),
	})
}
