package models

import (
	"time"
)

// Booking là yêu cầu đặt phòng của khách cho một khoảng ngày [checkIn, checkOut)
type Booking struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RoomID       uint      `json:"roomId" gorm:"index"`
	Room         Room      `json:"room" gorm:"foreignKey:RoomID"`
	RoomName     string    `json:"roomName"` // bản sao tên phòng tại thời điểm đặt
	Avatar       string    `json:"avatar"`   // bản sao ảnh phòng tại thời điểm đặt
	OwnerID      uint      `json:"ownerId"`
	CustomerID   uint      `json:"customerId"`
	Customer     User      `json:"customer" gorm:"foreignKey:CustomerID"`
	CheckInDate  time.Time `json:"checkInDate" gorm:"index"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"index"`
	GuestCount   int       `json:"guestCount"`
	TotalCost    int64     `json:"totalCost"` // đơn vị nhỏ nhất
	Status       string    `json:"status" gorm:"default:Pending;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"` // ngày đặt
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
