package dto

import (
	"time"
)

type RoomRequest struct {
	RoomId      uint   `json:"id"`
	RoomName    string `json:"roomName" validate:"required"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`
	Capacity    int    `json:"capacity" validate:"omitempty,gte=1"`
}

type RoomResponse struct {
	RoomId      uint      `json:"id"`
	RoomName    string    `json:"roomName"`
	Price       int64     `json:"price"`
	Description string    `json:"description"`
	Avatar      string    `json:"avatar"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Manager     Manager   `json:"manager"`
}

// Manager là DTO cho thông tin chủ phòng
type Manager struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

// RoomBookingDates là DTO cho các khoảng ngày phòng đã có khách
type RoomBookingDates struct {
	RoomId uint        `json:"roomId"`
	Dates  []StayRange `json:"dates"`
}

type StayRange struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}
