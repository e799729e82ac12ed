package dto

import "time"

// UserResponse định nghĩa response cho user
type UserResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	PhoneNumber string         `json:"phoneNumber"`
	Role        int            `json:"role"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Status      int            `json:"status,omitempty"`
	Avatar      string         `json:"avatar,omitempty"`
	OwnerID     *uint          `json:"ownerId,omitempty"`
	RoomIDs     []int64        `json:"roomIds,omitempty"`
	Staff       []UserResponse `json:"staff,omitempty"`
}

// CreateUserRequest định nghĩa request tạo user (owner tạo staff)
type CreateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Role        int    `json:"role"`
}

type UpdateUserRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Avatar      string `json:"avatar"`
}

// UserStatusRequest định nghĩa request cập nhật trạng thái user
type UserStatusRequest struct {
	Status int  `json:"status"`
	ID     uint `json:"id" binding:"required"`
}
