package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Alsaadah1/Hotel-Mate-sub000/config"
	"github.com/Alsaadah1/Hotel-Mate-sub000/constants"
	"github.com/Alsaadah1/Hotel-Mate-sub000/dto"
	"github.com/Alsaadah1/Hotel-Mate-sub000/models"
	"github.com/Alsaadah1/Hotel-Mate-sub000/response"
	"github.com/Alsaadah1/Hotel-Mate-sub000/services"
	"github.com/Alsaadah1/Hotel-Mate-sub000/validator"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	input.Email = strings.ToLower(input.Email)

	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Role:        constants.RoleCustomer,
		Status:      constants.UserStatusActive,
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		response.BadRequest(c, "Email đã được sử dụng")
		return
	}

	hashedPassword, err := services.HashPassword(input.Password)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Password = hashedPassword

	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		Status:      user.Status,
	})
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	// Tài khoản bị khóa thì không cho đăng nhập
	if user.Status != constants.UserStatusActive {
		response.Forbidden(c)
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserPhone:  user.PhoneNumber,
		UserRole:   user.Role,
		UpdatedAt:  user.UpdatedAt,
		CreatedAt:  user.CreatedAt,
		UserStatus: user.Status,
		UserAvatar: user.Avatar,
		OwnerID:    user.OwnerID,
	}

	response.Success(c, gin.H{
		"user_info":   userResponse,
		"accessToken": accessToken,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func GetUserIDFromToken(tokenString string) (uint, int, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return 0, 0, fmt.Errorf("invalid token format")
	}

	// Giải mã phần payload của token
	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode token payload: %w", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return 0, 0, fmt.Errorf("failed to unmarshal token payload: %w", err)
	}

	// Trích xuất userID và role từ claims
	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, 0, fmt.Errorf("userinfo not found in token claims")
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, 0, fmt.Errorf("user ID not found in userinfo")
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return 0, 0, fmt.Errorf("role not found in userinfo")
	}

	return uint(userID), int(role), nil
}

// AuthGoogle xử lý yêu cầu xác thực từ Google
func AuthGoogle(c *gin.Context) {
	var token dto.GoogleLoginInput

	if err := c.ShouldBindJSON(&token); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Xác minh tokenId từ Google
	payload, err := verifyGoogleIDToken(token.TokenID)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	googleEmail, _ := payload.Claims["email"].(string)
	googleName, _ := payload.Claims["name"].(string)
	googlePicture, _ := payload.Claims["picture"].(string)
	verifiedEmail, _ := payload.Claims["email_verified"].(bool)

	if !verifiedEmail {
		response.BadRequest(c, "Email chưa được Google xác thực")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", googleEmail).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// Nếu chưa có tài khoản thì tạo tài khoản mới
		user = models.User{
			Name:   googleName,
			Email:  googleEmail,
			Avatar: googlePicture,
			Role:   constants.RoleCustomer,
			Status: constants.UserStatusActive,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	if user.Status != constants.UserStatusActive {
		response.Forbidden(c)
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		log.Println("Error generating access token:", err)
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"user_info": dto.UserLoginResponse{
			UserID:     user.ID,
			UserName:   user.Name,
			UserEmail:  user.Email,
			UserPhone:  user.PhoneNumber,
			UserRole:   user.Role,
			UpdatedAt:  user.UpdatedAt,
			CreatedAt:  user.CreatedAt,
			UserStatus: user.Status,
			UserAvatar: user.Avatar,
		},
		"accessToken": accessToken,
	})
}

// verifyGoogleIDToken xác thực ID token từ Google
func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
