package services

import (
	"testing"
	"time"

	"github.com/Alsaadah1/Hotel-Mate-sub000/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func TestMergeFiltersKeepsOldValues(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	old := &dto.SearchFilters{
		Name:     "deluxe",
		PriceMin: int64Ptr(100),
		PriceMax: int64Ptr(500),
		Capacity: intPtr(2),
		FromDate: &from,
	}

	merged := MergeFilters(old, &dto.SearchFilters{})

	assert.Equal(t, "deluxe", merged.Name)
	require.NotNil(t, merged.PriceMin)
	assert.Equal(t, int64(100), *merged.PriceMin)
	require.NotNil(t, merged.PriceMax)
	assert.Equal(t, int64(500), *merged.PriceMax)
	require.NotNil(t, merged.Capacity)
	assert.Equal(t, 2, *merged.Capacity)
	require.NotNil(t, merged.FromDate)
	assert.Equal(t, from, *merged.FromDate)
}

func TestMergeFiltersNewValuesWin(t *testing.T) {
	old := &dto.SearchFilters{
		Name:     "deluxe",
		PriceMin: int64Ptr(100),
	}
	merged := MergeFilters(old, &dto.SearchFilters{
		Name:     "studio",
		PriceMin: int64Ptr(200),
	})

	assert.Equal(t, "studio", merged.Name)
	require.NotNil(t, merged.PriceMin)
	assert.Equal(t, int64(200), *merged.PriceMin)
}

func TestMergeFiltersDropsContradictoryPrices(t *testing.T) {
	// PriceMin mới vượt PriceMax cũ thì bỏ PriceMax cũ
	old := &dto.SearchFilters{PriceMax: int64Ptr(300)}
	merged := MergeFilters(old, &dto.SearchFilters{PriceMin: int64Ptr(400)})

	require.NotNil(t, merged.PriceMin)
	assert.Equal(t, int64(400), *merged.PriceMin)
	assert.Nil(t, merged.PriceMax)

	// PriceMax mới thấp hơn PriceMin cũ thì bỏ PriceMin cũ
	old = &dto.SearchFilters{PriceMin: int64Ptr(400)}
	merged = MergeFilters(old, &dto.SearchFilters{PriceMax: int64Ptr(300)})

	require.NotNil(t, merged.PriceMax)
	assert.Equal(t, int64(300), *merged.PriceMax)
	assert.Nil(t, merged.PriceMin)
}
