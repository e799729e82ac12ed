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
	"github.com/Alsaadah1/Hotel-Mate-sub000/models"
	"github.com/Alsaadah1/Hotel-Mate-sub000/response"
	"github.com/Alsaadah1/Hotel-Mate-sub000/services"
	"github.com/Alsaadah1/Hotel-Mate-sub000/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type UserController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewUserController(db *gorm.DB, redisCli *redis.Client) UserController {
	return UserController{
		DB:    db,
		Redis: redisCli,
	}
}

func convertToUserResponse(user models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		Status:      user.Status,
		Avatar:      user.Avatar,
		OwnerID:     user.OwnerID,
		RoomIDs:     user.RoomIDs,
	}
	for _, staff := range user.Staff {
		resp.Staff = append(resp.Staff, convertToUserResponse(staff))
	}
	return resp
}

// GetUsers trả danh sách nhân viên của chủ đang đăng nhập, có cache và filter
func (u UserController) GetUsers(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	cacheKey := fmt.Sprintf("users:owner:%d", currentUserID)

	var allStaff []models.User
	if err := services.GetFromRedis(config.Ctx, u.Redis, cacheKey, &allStaff); err != nil || len(allStaff) == 0 {
		if err := u.DB.Where("owner_id = ?", currentUserID).Find(&allStaff).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, u.Redis, cacheKey, allStaff, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách nhân viên vào Redis: %v", err)
		}
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	statusStr := c.Query("status")

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

	filtered := make([]models.User, 0)
	for _, user := range allStaff {
		if nameFilter != "" && !strings.Contains(strings.ToLower(user.Name), strings.ToLower(nameFilter)) {
			continue
		}
		if statusStr != "" {
			status, err := strconv.Atoi(statusStr)
			if err == nil && user.Status != status {
				continue
			}
		}
		filtered = append(filtered, user)
	}

	total := len(filtered)

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.User{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	userResponses := make([]dto.UserResponse, 0, len(filtered))
	for _, user := range filtered {
		userResponses = append(userResponses, convertToUserResponse(user))
	}

	response.SuccessWithPagination(c, userResponses, page, limit, total)
}

// CreateUser cho chủ tạo tài khoản nhân viên thuộc quyền mình
func (u UserController) CreateUser(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	req.Email = strings.ToLower(req.Email)

	var existing models.User
	if err := u.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		response.BadRequest(c, "Email đã được sử dụng")
		return
	}

	hashedPassword, err := services.HashPassword(req.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	ownerID := currentUserID
	user := models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashedPassword,
		PhoneNumber: req.PhoneNumber,
		Role:        constants.RoleStaff,
		Status:      constants.UserStatusActive,
		OwnerID:     &ownerID,
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := u.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	u.invalidateUserCache(currentUserID)

	response.Success(c, convertToUserResponse(user))
}

// GetUserByID trả chi tiết một user, kèm danh sách nhân viên nếu là chủ
func (u UserController) GetUserByID(c *gin.Context) {
	userId := c.Param("id")

	var user models.User
	if err := u.DB.Preload("Staff").Where("id = ?", userId).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// GetProfile trả thông tin user đang đăng nhập từ token
func (u UserController) GetProfile(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var user models.User
	if err := u.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// UpdateUser cập nhật thông tin cá nhân của user đang đăng nhập
func (u UserController) UpdateUser(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := u.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := u.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	if user.OwnerID != nil {
		u.invalidateUserCache(*user.OwnerID)
	}

	response.Success(c, convertToUserResponse(user))
}

// ChangeUserStatus khóa hoặc mở khóa tài khoản nhân viên
func (u UserController) ChangeUserStatus(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var req dto.UserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.Status != constants.UserStatusActive && req.Status != constants.UserStatusInactive {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	var user models.User
	if err := u.DB.First(&user, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Chỉ được đổi trạng thái nhân viên của chính mình
	if user.OwnerID == nil || *user.OwnerID != currentUserID {
		response.Forbidden(c)
		return
	}

	if err := u.DB.Model(&user).Update("status", req.Status).Error; err != nil {
		response.ServerError(c)
		return
	}
	user.Status = req.Status

	u.invalidateUserCache(currentUserID)

	response.Success(c, convertToUserResponse(user))
}

func (u UserController) invalidateUserCache(ownerID uint) {
	if u.Redis == nil {
		return
	}
	key := fmt.Sprintf("users:owner:%d", ownerID)
	if err := services.DeleteFromRedis(config.Ctx, u.Redis, key); err != nil {
		log.Printf("Lỗi khi xóa cache users: %v", err)
	}
}
