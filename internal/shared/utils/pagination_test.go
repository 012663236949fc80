package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults applied", page: 0, pageSize: 0, wantPage: 1, wantPageSize: 20},
		{name: "negative values fall back", page: -3, pageSize: -1, wantPage: 1, wantPageSize: 20},
		{name: "valid values kept", page: 4, pageSize: 50, wantPage: 4, wantPageSize: 50},
		{name: "page size capped", page: 1, pageSize: 500, wantPage: 1, wantPageSize: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}
