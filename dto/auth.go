package dto

import (
	"time"
)

type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserLoginResponse struct {
	UserID     uint      `json:"id"`
	UserName   string    `json:"name"`
	UserEmail  string    `json:"email"`
	UserPhone  string    `json:"phone"`
	UserRole   int       `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	UserStatus int       `json:"status"`
	UserAvatar string    `json:"avatar"`
	OwnerID    *uint     `json:"ownerId"`
}

type GoogleLoginInput struct {
	TokenID string `json:"tokenId" binding:"required"`
}
