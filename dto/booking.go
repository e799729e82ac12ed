package dto

import (
	"time"
)

// ActorResponse là DTO cho thông tin khách đặt phòng
type ActorResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type CreateBookingRequest struct {
	RoomID       uint   `json:"roomId"`
	CustomerID   uint   `json:"customerId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	GuestCount   int    `json:"guestCount"`
}

// BookingStatusRequest là DTO cho request duyệt/từ chối booking
type BookingStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type BookingRoomResponse struct {
	ID       uint   `json:"id"`
	RoomName string `json:"roomName"`
	Price    int64  `json:"price"`
	Avatar   string `json:"avatar"`
}

type BookingResponse struct {
	ID           uint                `json:"id"`
	Customer     ActorResponse       `json:"customer"`
	Room         BookingRoomResponse `json:"room"`
	CheckInDate  string              `json:"checkInDate"`
	CheckOutDate string              `json:"checkOutDate"`
	GuestCount   int                 `json:"guestCount"`
	Nights       int                 `json:"nights"`
	TotalCost    int64               `json:"totalCost"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// QuoteRequest là DTO cho yêu cầu báo giá, nhận khoảng ngày hoặc nhãn thời lượng cũ
type QuoteRequest struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Duration     string `json:"duration"`
}

type QuoteResponse struct {
	RoomID    uint  `json:"roomId"`
	Price     int64 `json:"price"`
	Nights    int   `json:"nights"`
	TotalCost int64 `json:"totalCost"`
}
