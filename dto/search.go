package dto

import (
	"time"
)

type SearchFilters struct {
	Name     string
	PriceMin *int64
	PriceMax *int64
	Capacity *int
	FromDate *time.Time
	ToDate   *time.Time
	Page     int
	Limit    int
}
