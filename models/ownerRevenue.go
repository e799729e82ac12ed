package models

import "time"

// OwnerRevenue gom doanh thu theo ngày cho từng chủ khách sạn
type OwnerRevenue struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_owner_date" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Date         time.Time `gorm:"not null;uniqueIndex:idx_owner_date" json:"date"`
	Revenue      int64     `gorm:"not null" json:"revenue"`
	BookingCount int       `gorm:"not null" json:"booking_count"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
