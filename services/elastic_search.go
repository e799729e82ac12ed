package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/Alsaadah1/Hotel-Mate-sub000/config"
	"github.com/Alsaadah1/Hotel-Mate-sub000/models"

	"github.com/elastic/go-elasticsearch/v8"
)

var es *elasticsearch.Client

const roomIndex = "rooms"

// ConnectElastic khởi tạo client Elasticsearch, không bắt buộc cho app chạy
func ConnectElastic() error {
	addr := os.Getenv("ELASTIC_ADDR")
	if addr == "" {
		log.Println("ELASTIC_ADDR chưa cấu hình, bỏ qua Elasticsearch")
		return nil
	}

	cfg := elasticsearch.Config{
		Addresses: []string{addr},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
		Transport: &http.Transport{},
	}
	var err error
	es, err = elasticsearch.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("không thể kết nối Elasticsearch: %w", err)
	}

	log.Println("Kết nối Elasticsearch thành công")
	return nil
}

// IndexRoomsToES đẩy toàn bộ phòng vào index rooms bằng Bulk API
func IndexRoomsToES() error {
	if es == nil {
		return fmt.Errorf("ElasticSearch client chưa được khởi tạo")
	}

	var rooms []models.Room
	if err := config.DB.Preload("User").Find(&rooms).Error; err != nil {
		return err
	}

	var buf strings.Builder
	for _, room := range rooms {
		meta := fmt.Sprintf(`{ "index" : { "_index" : "%s", "_id" : "%d" } }`, roomIndex, room.RoomId)
		buf.WriteString(meta + "\n")

		roomData := map[string]interface{}{
			"id":          room.RoomId,
			"roomName":    room.RoomName,
			"price":       room.Price,
			"description": room.Description,
			"avatar":      room.Avatar,
			"capacity":    room.Capacity,
			"userId":      room.UserID,
			"managerName": room.User.Name,
		}
		roomJSON, err := json.Marshal(roomData)
		if err != nil {
			log.Printf("Lỗi khi convert room thành JSON: %v", err)
			continue
		}
		buf.WriteString(string(roomJSON) + "\n")
	}

	return sendBulkRequest(buf.String())
}

// sendBulkRequest gửi request bulk đến Elasticsearch
func sendBulkRequest(data string) error {
	res, err := es.Bulk(bytes.NewReader([]byte(data)), es.Bulk.WithContext(context.Background()))
	if err != nil {
		return fmt.Errorf("lỗi khi gửi Bulk API: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	var bulkRes map[string]interface{}
	if err := json.Unmarshal(body, &bulkRes); err != nil {
		return fmt.Errorf("lỗi khi parse phản hồi: %w", err)
	}

	if items, ok := bulkRes["items"].([]interface{}); ok {
		for _, item := range items {
			indexOp := item.(map[string]interface{})["index"].(map[string]interface{})
			if errorInfo, exists := indexOp["error"]; exists {
				log.Printf("Lỗi khi index document ID %v: %+v", indexOp["_id"], errorInfo)
			}
		}
	}

	if res.IsError() {
		return fmt.Errorf("Elasticsearch trả về lỗi: %s", string(body))
	}

	log.Println("Dữ liệu phòng đã được index vào Elasticsearch")
	return nil
}

// SearchRoomsES tìm phòng gần đúng theo tên/mô tả qua Elasticsearch
func SearchRoomsES(query string) ([]models.Room, error) {
	if es == nil {
		return nil, fmt.Errorf("ElasticSearch client chưa được khởi tạo")
	}

	searchQuery := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"should": []map[string]interface{}{
					{"multi_match": map[string]interface{}{
						"query":     query,
						"fields":    []string{"roomName^3", "description", "managerName"},
						"fuzziness": "AUTO",
					}},
					{"match_phrase_prefix": map[string]interface{}{
						"roomName": query,
					}},
				},
				"minimum_should_match": 1,
			},
		},
		"sort": []map[string]interface{}{
			{"_score": "desc"},
		},
	}

	queryBody, _ := json.Marshal(searchQuery)

	res, err := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(roomIndex),
		es.Search.WithBody(bytes.NewReader(queryBody)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var result struct {
		Hits struct {
			Hits []struct {
				Source models.Room `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, err
	}

	var rooms []models.Room
	for _, hit := range result.Hits.Hits {
		rooms = append(rooms, hit.Source)
	}

	return rooms, nil
}
