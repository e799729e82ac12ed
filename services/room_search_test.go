package services

import (
	"testing"

	"github.com/Alsaadah1/Hotel-Mate-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "phong deluxe", normalizeInput("Phòng Deluxe"))
	assert.Equal(t, "can ho view bien", normalizeInput("  Căn Hộ View Biển "))
	assert.Equal(t, "", normalizeInput("   "))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("deluxe", "deluxe"))
	assert.Equal(t, 1.0, calculateSimilarity("", ""))

	// Một phép thay thế tính giá 2 theo options mặc định
	sim := calculateSimilarity("deluxe", "deluxa")
	assert.InDelta(t, 2.0/3.0, sim, 0.001)

	// Hai chuỗi khác hẳn nhau
	assert.Less(t, calculateSimilarity("deluxe", "xyz"), 0.3)
}

func TestFilterAndScoreRooms(t *testing.T) {
	rooms := []models.Room{
		{RoomId: 1, RoomName: "Phòng Deluxe Hướng Biển"},
		{RoomId: 2, RoomName: "Phòng Standard"},
		{RoomId: 3, RoomName: "Căn Hộ Studio", Description: "Gần biển, có ban công"},
	}

	scored := FilterAndScoreRooms("deluxe", rooms)
	require.NotEmpty(t, scored)
	assert.Equal(t, uint(1), scored[0].Room.RoomId)
	for _, s := range scored {
		assert.Greater(t, s.Score, 0)
	}

	// Query có dấu vẫn khớp với tên đã bỏ dấu
	scored = FilterAndScoreRooms("biển", rooms)
	require.NotEmpty(t, scored)
	assert.Equal(t, uint(1), scored[0].Room.RoomId)

	// Không khớp gì thì danh sách rỗng
	scored = FilterAndScoreRooms("zzzzzz", rooms)
	assert.Empty(t, scored)
}

func TestFilterAndScoreRoomsSortedByScore(t *testing.T) {
	rooms := []models.Room{
		{RoomId: 1, RoomName: "Deluxe"},
		{RoomId: 2, RoomName: "Phòng khác", Description: "nâng cấp lên deluxe miễn phí"},
	}

	scored := FilterAndScoreRooms("deluxe", rooms)
	require.Len(t, scored, 2)
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
	assert.Equal(t, uint(1), scored[0].Room.RoomId)
}
