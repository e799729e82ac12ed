package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/olahol/melody"
)

// BookingEvent là thông báo realtime đẩy qua WebSocket cho dashboard chủ phòng
type BookingEvent struct {
	Type      string `json:"type"` // booking_created | booking_status
	BookingID uint   `json:"bookingId"`
	RoomName  string `json:"roomName"`
	OwnerID   uint   `json:"ownerId"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// BroadcastBookingEvent gửi thông báo booking qua melody, lỗi chỉ log không chặn request
func BroadcastBookingEvent(m *melody.Melody, event BookingEvent) {
	if m == nil {
		return
	}
	if event.Message == "" {
		event.Message = fmt.Sprintf("🔔 Booking %d phòng %s: %s", event.BookingID, event.RoomName, event.Status)
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Lỗi khi tạo thông báo booking: %v", err)
		return
	}
	if err := m.Broadcast(payload); err != nil {
		log.Printf("Lỗi khi broadcast thông báo booking: %v", err)
	}
}
