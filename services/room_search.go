package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/Alsaadah1/Hotel-Mate-sub000/constants"
	"github.com/Alsaadah1/Hotel-Mate-sub000/dto"
	"github.com/Alsaadah1/Hotel-Mate-sub000/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// ScoredRoom là phòng kèm điểm phù hợp với query
type ScoredRoom struct {
	Room  models.Room
	Score int
}

// normalizeInput chuẩn hóa chuỗi: bỏ dấu, thường hóa, gộp unicode tổ hợp
func normalizeInput(input string) string {
	input = norm.NFC.String(strings.TrimSpace(input))
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// createMatcher tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity tính độ tương đồng giữa hai chuỗi theo levenshtein
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// prepareRoomNames gom tên phòng đã chuẩn hóa cho closestmatch
func prepareRoomNames(rooms []models.Room) []string {
	uniqueNames := make(map[string]bool)
	for _, room := range rooms {
		if room.RoomName != "" {
			uniqueNames[normalizeInput(room.RoomName)] = true
		}
	}

	names := make([]string, 0, len(uniqueNames))
	for name := range uniqueNames {
		names = append(names, name)
	}
	return names
}

// calculateRoomScore tính điểm phù hợp của phòng với query
func calculateRoomScore(query string, room models.Room, cmNames *closestmatch.ClosestMatch) int {
	normalizedName := normalizeInput(room.RoomName)
	score := 0

	if strings.Contains(normalizedName, query) {
		score += 20
	}
	if cmNames.Closest(query) == normalizedName {
		score += 13
	}
	if calculateSimilarity(query, normalizedName) > 0.7 {
		score += 10
	}
	if desc := normalizeInput(room.Description); desc != "" && strings.Contains(desc, query) {
		score += 4
	}

	return score
}

// FilterAndScoreRooms lọc và xếp hạng phòng theo độ khớp tên với query
func FilterAndScoreRooms(query string, rooms []models.Room) []ScoredRoom {
	normalizedQuery := normalizeInput(query)
	cmNames := createMatcher(prepareRoomNames(rooms))

	var scoredRooms []ScoredRoom
	scoreCh := make(chan ScoredRoom, len(rooms))
	var wg sync.WaitGroup

	for _, room := range rooms {
		wg.Add(1)
		go func(room models.Room) {
			defer wg.Done()
			score := calculateRoomScore(normalizedQuery, room, cmNames)
			if score > 0 {
				scoreCh <- ScoredRoom{Room: room, Score: score}
			}
		}(room)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scored := range scoreCh {
		scoredRooms = append(scoredRooms, scored)
	}

	sort.SliceStable(scoredRooms, func(i, j int) bool {
		return scoredRooms[i].Score > scoredRooms[j].Score
	})
	return scoredRooms
}

// SearchRooms áp bộ lọc giá/sức chứa/khoảng ngày lên DB rồi xếp hạng theo tên.
// Phòng có booking chưa bị từ chối trùng khoảng ngày yêu cầu sẽ bị loại.
func SearchRooms(db *gorm.DB, filters *dto.SearchFilters) ([]models.Room, int, error) {
	tx := db.Model(&models.Room{}).Preload("User")

	if filters.PriceMin != nil {
		tx = tx.Where("price >= ?", *filters.PriceMin)
	}
	if filters.PriceMax != nil {
		tx = tx.Where("price <= ?", *filters.PriceMax)
	}
	if filters.Capacity != nil {
		tx = tx.Where("capacity >= ?", *filters.Capacity)
	}
	if filters.FromDate != nil && filters.ToDate != nil {
		tx = tx.Where("NOT EXISTS (SELECT 1 FROM bookings WHERE bookings.room_id = rooms.room_id AND bookings.status <> ? AND bookings.check_in_date < ? AND bookings.check_out_date > ?)",
			constants.BookingStatusRejected, *filters.ToDate, *filters.FromDate)
	}

	var rooms []models.Room
	if err := tx.Find(&rooms).Error; err != nil {
		return nil, 0, err
	}

	if filters.Name != "" {
		scored := FilterAndScoreRooms(filters.Name, rooms)
		rooms = make([]models.Room, 0, len(scored))
		for _, s := range scored {
			rooms = append(rooms, s.Room)
		}
	}

	total := len(rooms)

	// Phân trang trên kết quả đã xếp hạng
	page := filters.Page
	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}
	start := page * limit
	end := start + limit
	if start >= total {
		rooms = []models.Room{}
	} else if end > total {
		rooms = rooms[start:]
	} else {
		rooms = rooms[start:end]
	}

	return rooms, total, nil
}
