package controllers

import (
	"log"

	"github.com/Alsaadah1/Hotel-Mate-sub000/config"
	"github.com/Alsaadah1/Hotel-Mate-sub000/dto"
	"github.com/Alsaadah1/Hotel-Mate-sub000/response"
	"github.com/Alsaadah1/Hotel-Mate-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type SearchController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewSearchController(db *gorm.DB, redisCli *redis.Client) SearchController {
	return SearchController{
		DB:    db,
		Redis: redisCli,
	}
}

// SearchRooms tìm phòng gần đúng theo tên, gộp với bộ lọc cũ của phiên
func (s SearchController) SearchRooms(c *gin.Context) {
	filters := parseSearchFilters(c)

	if filters.Name == "" {
		response.BadRequest(c, "Từ khóa tìm kiếm không được để trống")
		return
	}

	sessionId := c.GetString("sessionId")
	if sessionId != "" && s.Redis != nil {
		if oldFilters, err := services.GetLastFilters(config.Ctx, s.Redis, sessionId); err == nil && oldFilters != nil {
			filters = services.MergeFilters(oldFilters, filters)
		}
		if err := services.SaveLastFilters(config.Ctx, s.Redis, sessionId, filters); err != nil {
			log.Printf("Lỗi khi lưu bộ lọc vào Redis: %v", err)
		}
	}

	rooms, total, err := services.SearchRooms(s.DB, filters)
	if err != nil {
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.SuccessWithPagination(c, roomResponses, filters.Page, filters.Limit, total)
}

// SearchRoomsES tìm phòng qua Elasticsearch, mờ hơn và chịu lỗi chính tả tốt hơn
func (s SearchController) SearchRoomsES(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Từ khóa tìm kiếm không được để trống")
		return
	}

	rooms, err := services.SearchRoomsES(query)
	if err != nil {
		log.Printf("Lỗi khi tìm kiếm Elasticsearch: %v", err)
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.Success(c, roomResponses)
}

// SyncElastic đồng bộ lại toàn bộ phòng vào Elasticsearch
func (s SearchController) SyncElastic(c *gin.Context) {
	if err := services.IndexRoomsToES(); err != nil {
		log.Printf("Lỗi khi đồng bộ Elasticsearch: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Đồng bộ Elasticsearch thành công"})
}

// ClearSearchFilters xóa bộ lọc đã nhớ của phiên hiện tại
func (s SearchController) ClearSearchFilters(c *gin.Context) {
	sessionId := c.GetString("sessionId")
	if sessionId == "" || s.Redis == nil {
		response.Success(c, nil)
		return
	}

	if err := services.ClearLastFilters(config.Ctx, s.Redis, sessionId); err != nil {
		log.Printf("Lỗi khi xóa bộ lọc phiên %s: %v", sessionId, err)
	}

	response.Success(c, nil)
}
