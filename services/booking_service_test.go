package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a1, a2   time.Time
		b1, b2   time.Time
		expected bool
	}{
		{
			name: "trùng một phần",
			a1:   date(2024, 1, 10), a2: date(2024, 1, 15),
			b1: date(2024, 1, 13), b2: date(2024, 1, 20),
			expected: true,
		},
		{
			name: "khoảng này chứa khoảng kia",
			a1:   date(2024, 1, 10), a2: date(2024, 1, 20),
			b1: date(2024, 1, 12), b2: date(2024, 1, 14),
			expected: true,
		},
		{
			name: "trả phòng đúng ngày nhận phòng mới",
			a1:   date(2024, 1, 1), a2: date(2024, 1, 5),
			b1: date(2024, 1, 5), b2: date(2024, 1, 9),
			expected: false,
		},
		{
			name: "hai khoảng rời nhau",
			a1:   date(2024, 1, 1), a2: date(2024, 1, 3),
			b1: date(2024, 1, 10), b2: date(2024, 1, 12),
			expected: false,
		},
		{
			name: "hai khoảng giống hệt nhau",
			a1:   date(2024, 1, 1), a2: date(2024, 1, 5),
			b1: date(2024, 1, 1), b2: date(2024, 1, 5),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IntervalsOverlap(tt.a1, tt.a2, tt.b1, tt.b2))
			// Đổi chỗ hai khoảng, kết quả phải như nhau
			assert.Equal(t, tt.expected, IntervalsOverlap(tt.b1, tt.b2, tt.a1, tt.a2))
		})
	}
}

func TestNightsBetween(t *testing.T) {
	assert.Equal(t, 3, NightsBetween(date(2024, 1, 10), date(2024, 1, 13)))
	assert.Equal(t, 1, NightsBetween(date(2024, 1, 10), date(2024, 1, 11)))
	assert.Equal(t, 31, NightsBetween(date(2024, 1, 1), date(2024, 2, 1)))

	// Qua năm
	assert.Equal(t, 2, NightsBetween(date(2023, 12, 31), date(2024, 1, 2)))

	// Cùng ngày hoặc ngược ngày vẫn tính tối thiểu 1 đêm
	assert.Equal(t, 1, NightsBetween(date(2024, 1, 10), date(2024, 1, 10)))
	assert.Equal(t, 1, NightsBetween(date(2024, 1, 13), date(2024, 1, 10)))
}

func TestNightsBetweenIgnoresTimeOfDay(t *testing.T) {
	checkIn := time.Date(2024, 1, 10, 23, 45, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 13, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 3, NightsBetween(checkIn, checkOut))
}

func TestTotalCost(t *testing.T) {
	assert.Equal(t, int64(135), TotalCost(45, 3))
	assert.Equal(t, int64(45), TotalCost(45, 1))
	assert.Equal(t, int64(0), TotalCost(0, 5))

	// Giá lớn không bị tràn trong phạm vi int64
	assert.Equal(t, int64(7_000_000_000), TotalCost(1_000_000_000, 7))
}

func TestNightsFromLabel(t *testing.T) {
	tests := []struct {
		label    string
		expected int
	}{
		{"1 Day", 1},
		{"1 Night", 1},
		{"2 Nights", 2},
		{"3 Days", 3},
		{"3 Nights", 3},
		{"1 Week", 7},
		{"", 1},
		{"4 Nights", 1},
		{"2 nights", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NightsFromLabel(tt.label), "label %q", tt.label)
	}
}

func TestParseBookingDate(t *testing.T) {
	parsed, err := ParseBookingDate("15/06/2024")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 6, 15), parsed)
	assert.Equal(t, time.UTC, parsed.Location())

	_, err = ParseBookingDate("2024-06-15")
	assert.Error(t, err)

	_, err = ParseBookingDate("31/02/2024")
	assert.Error(t, err)
}

func TestNormalizeDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	local := time.Date(2024, 6, 15, 18, 30, 0, 0, loc)
	normalized := NormalizeDate(local)

	assert.Equal(t, date(2024, 6, 15), normalized)
	assert.Equal(t, time.UTC, normalized.Location())
}
