package models

import (
	"fmt"
	"time"
)

type Room struct {
	RoomId      uint      `json:"id" gorm:"primaryKey"`
	RoomName    string    `json:"roomName"`
	Price       int64     `json:"price"` // giá một đêm, đơn vị nhỏ nhất
	Description string    `json:"description"`
	Avatar      string    `json:"avatar"`
	Capacity    int       `json:"capacity" gorm:"default:2"`
	UserID      uint      `json:"userId"` // chủ phòng
	User        User      `json:"user" gorm:"foreignKey:UserID"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Validate kiểm tra dữ liệu phòng trước khi lưu
func (r *Room) Validate() error {
	if r.RoomName == "" {
		return fmt.Errorf("room name is required")
	}
	if r.Price <= 0 {
		return fmt.Errorf("invalid price: %d, must be positive", r.Price)
	}
	if r.Capacity < 1 {
		return fmt.Errorf("invalid capacity: %d, must be at least 1", r.Capacity)
	}
	return nil
}
