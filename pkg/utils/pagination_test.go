package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{"defaults", "", 1, DefaultPageSize, 0},
		{"explicit", "page=3&limit=20", 3, 20, 40},
		{"negative page", "page=-2&limit=5", 1, 5, 0},
		{"limit above max", "page=2&limit=500", 2, DefaultPageSize, DefaultPageSize},
		{"garbage", "page=abc&limit=xyz", 1, DefaultPageSize, 0},
		{"huge page is clamped", "page=922337203685477582&limit=100", MaxPage, MaxPageSize, (MaxPage - 1) * MaxPageSize},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			c := e.NewContext(req, httptest.NewRecorder())

			params := GetPaginationParams(c)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantSize, params.PageSize)
			assert.Equal(t, tt.wantOffset, params.Offset)
			assert.GreaterOrEqual(t, params.Offset, 0)
		})
	}
}
