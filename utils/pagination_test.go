package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		totalItems int64
		wantPage   int
		wantLimit  int
		wantSkip   int
		wantPages  int
	}{
		{"first page defaults", 1, 10, 25, 1, 10, 0, 3},
		{"middle page", 2, 10, 25, 2, 10, 10, 3},
		{"page floored at 1", 0, 10, 25, 1, 10, 0, 3},
		{"negative page floored at 1", -3, 10, 25, 1, 10, 0, 3},
		{"limit floored at 1", 1, 0, 5, 1, 1, 0, 5},
		{"limit clamped at 100", 1, 500, 1000, 1, 100, 0, 10},
		{"exact division", 3, 5, 15, 3, 5, 10, 3},
		{"empty result set", 1, 10, 0, 1, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := CalculatePagination(tt.page, tt.limit, tt.totalItems)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantSkip, p.Skip)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.totalItems, p.TotalItems)
		})
	}
}

func TestPaginationNavigation(t *testing.T) {
	p := CalculatePagination(1, 10, 25)
	assert.True(t, p.HasNextPage())
	assert.False(t, p.HasPrevPage())

	p = CalculatePagination(3, 10, 25)
	assert.False(t, p.HasNextPage())
	assert.True(t, p.HasPrevPage())

	p = CalculatePagination(5, 10, 0)
	assert.False(t, p.HasNextPage())
}
