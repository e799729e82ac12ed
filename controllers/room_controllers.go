package controllers

import (
	"log"
	"strconv"
	"time"

	"github.com/Alsaadah1/Hotel-Mate-sub000/config"
	"github.com/Alsaadah1/Hotel-Mate-sub000/constants"
	"github.com/Alsaadah1/Hotel-Mate-sub000/dto"
	"github.com/Alsaadah1/Hotel-Mate-sub000/models"
	"github.com/Alsaadah1/Hotel-Mate-sub000/response"
	"github.com/Alsaadah1/Hotel-Mate-sub000/services"
	"github.com/Alsaadah1/Hotel-Mate-sub000/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type RoomController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewRoomController(db *gorm.DB, redisCli *redis.Client) RoomController {
	return RoomController{
		DB:    db,
		Redis: redisCli,
	}
}

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		RoomId:      room.RoomId,
		RoomName:    room.RoomName,
		Price:       room.Price,
		Description: room.Description,
		Avatar:      room.Avatar,
		Capacity:    room.Capacity,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
		Manager: dto.Manager{
			Id:   room.User.ID,
			Name: room.User.Name,
		},
	}
}

// parseSearchFilters đọc bộ lọc tìm phòng từ query string
func parseSearchFilters(c *gin.Context) *dto.SearchFilters {
	filters := &dto.SearchFilters{
		Name:  c.Query("name"),
		Page:  0,
		Limit: 10,
	}

	if pageStr := c.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page >= 0 {
			filters.Page = page
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filters.Limit = limit
		}
	}
	if priceMinStr := c.Query("priceMin"); priceMinStr != "" {
		if priceMin, err := strconv.ParseInt(priceMinStr, 10, 64); err == nil {
			filters.PriceMin = &priceMin
		}
	}
	if priceMaxStr := c.Query("priceMax"); priceMaxStr != "" {
		if priceMax, err := strconv.ParseInt(priceMaxStr, 10, 64); err == nil {
			filters.PriceMax = &priceMax
		}
	}
	if capacityStr := c.Query("capacity"); capacityStr != "" {
		if capacity, err := strconv.Atoi(capacityStr); err == nil && capacity > 0 {
			filters.Capacity = &capacity
		}
	}
	if fromStr := c.Query("fromDate"); fromStr != "" {
		if from, err := services.ParseBookingDate(fromStr); err == nil {
			filters.FromDate = &from
		}
	}
	if toStr := c.Query("toDate"); toStr != "" {
		if to, err := services.ParseBookingDate(toStr); err == nil {
			filters.ToDate = &to
		}
	}

	return filters
}

// GetAllRooms trả danh sách phòng theo bộ lọc, nhớ bộ lọc cũ của phiên
// để request sau chỉ cần gửi phần thay đổi
func (r RoomController) GetAllRooms(c *gin.Context) {
	filters := parseSearchFilters(c)

	sessionId := c.GetString("sessionId")
	if sessionId != "" && r.Redis != nil {
		if oldFilters, err := services.GetLastFilters(config.Ctx, r.Redis, sessionId); err == nil && oldFilters != nil {
			filters = services.MergeFilters(oldFilters, filters)
		}
		if err := services.SaveLastFilters(config.Ctx, r.Redis, sessionId, filters); err != nil {
			log.Printf("Lỗi khi lưu bộ lọc vào Redis: %v", err)
		}
	}

	rooms, total, err := services.SearchRooms(r.DB, filters)
	if err != nil {
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.SuccessWithPagination(c, roomResponses, filters.Page, filters.Limit, total)
}

// GetRoomDetail trả chi tiết một phòng
func (r RoomController) GetRoomDetail(c *gin.Context) {
	roomId := c.Param("id")

	var room models.Room
	if err := r.DB.Preload("User").Where("room_id = ?", roomId).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToRoomResponse(room))
}

// CreateRoom tạo phòng mới thuộc chủ đang đăng nhập
func (r RoomController) CreateRoom(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateRoom(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Nhân viên tạo phòng thì phòng thuộc chủ của nhân viên đó
	ownerID := currentUserID
	if currentUserRole == constants.RoleStaff {
		var staff models.User
		if err := r.DB.First(&staff, currentUserID).Error; err != nil || staff.OwnerID == nil {
			response.Forbidden(c)
			return
		}
		ownerID = *staff.OwnerID
	}

	room := models.Room{
		RoomName:    req.RoomName,
		Price:       req.Price,
		Description: req.Description,
		Avatar:      req.Avatar,
		Capacity:    req.Capacity,
		UserID:      ownerID,
	}

	if err := r.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Cập nhật danh sách phòng của chủ
	if err := r.DB.Model(&models.User{}).
		Where("id = ?", ownerID).
		Update("room_ids", gorm.Expr("array_append(room_ids, ?)", room.RoomId)).Error; err != nil {
		log.Printf("Lỗi khi cập nhật room_ids của chủ %d: %v", ownerID, err)
	}

	r.invalidateRoomCache()

	r.DB.Preload("User").First(&room, room.RoomId)
	response.Success(c, convertToRoomResponse(room))
}

// UpdateRoom cập nhật thông tin phòng, chỉ chủ hoặc nhân viên của chủ đó
func (r RoomController) UpdateRoom(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.RoomId == 0 {
		response.BadRequest(c, "ID phòng không được để trống")
		return
	}

	var room models.Room
	if err := r.DB.First(&room, req.RoomId).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !canManageBooking(r.DB, currentUserID, currentUserRole, room.UserID) {
		response.Forbidden(c)
		return
	}

	if err := validator.ValidateRoom(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room.RoomName = req.RoomName
	room.Price = req.Price
	room.Description = req.Description
	if req.Avatar != "" {
		room.Avatar = req.Avatar
	}
	room.Capacity = req.Capacity

	if err := r.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	r.invalidateRoomCache()

	r.DB.Preload("User").First(&room, room.RoomId)
	response.Success(c, convertToRoomResponse(room))
}

// DeleteRoom xóa phòng chưa có booking đang hiệu lực
func (r RoomController) DeleteRoom(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	roomId := c.Param("id")

	var room models.Room
	if err := r.DB.Where("room_id = ?", roomId).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !canManageBooking(r.DB, currentUserID, currentUserRole, room.UserID) {
		response.Forbidden(c)
		return
	}

	// Phòng còn booking chưa bị từ chối trong tương lai thì không xóa được
	var activeBookings int64
	if err := r.DB.Model(&models.Booking{}).
		Where("room_id = ? AND status <> ? AND check_out_date > ?",
			room.RoomId, constants.BookingStatusRejected, time.Now()).
		Count(&activeBookings).Error; err != nil {
		response.ServerError(c)
		return
	}
	if activeBookings > 0 {
		response.Conflict(c, "Phòng còn booking hiệu lực, không thể xóa")
		return
	}

	if err := r.DB.Delete(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := r.DB.Model(&models.User{}).
		Where("id = ?", room.UserID).
		Update("room_ids", gorm.Expr("array_remove(room_ids, ?)", room.RoomId)).Error; err != nil {
		log.Printf("Lỗi khi cập nhật room_ids của chủ %d: %v", room.UserID, err)
	}

	r.invalidateRoomCache()

	response.Success(c, nil)
}

// GetRoomBookingDates trả các khoảng ngày phòng đã có khách, client dùng để
// khóa ngày trên lịch
func (r RoomController) GetRoomBookingDates(c *gin.Context) {
	roomIdStr := c.Param("id")
	roomId, err := strconv.Atoi(roomIdStr)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := r.DB.First(&room, roomId).Error; err != nil {
		response.NotFound(c)
		return
	}

	bookings, err := services.RoomBookedRanges(r.DB, uint(roomId))
	if err != nil {
		renderAppError(c, err)
		return
	}

	dates := make([]dto.StayRange, 0, len(bookings))
	for _, booking := range bookings {
		dates = append(dates, dto.StayRange{
			CheckInDate:  booking.CheckInDate.Format(services.DateLayout),
			CheckOutDate: booking.CheckOutDate.Format(services.DateLayout),
		})
	}

	response.Success(c, dto.RoomBookingDates{
		RoomId: uint(roomId),
		Dates:  dates,
	})
}

func (r RoomController) invalidateRoomCache() {
	if r.Redis == nil {
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, r.Redis, "rooms:*"); err != nil {
		log.Printf("Lỗi khi xóa cache phòng: %v", err)
	}
}
