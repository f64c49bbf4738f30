package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"claimdesk/internal/shared/constants"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{name: "valid values pass through", page: 3, pageSize: 25, wantPage: 3, wantPageSize: 25},
		{name: "zero page defaults", page: 0, pageSize: 20, wantPage: constants.DefaultPage, wantPageSize: 20},
		{name: "negative page defaults", page: -1, pageSize: 20, wantPage: constants.DefaultPage, wantPageSize: 20},
		{name: "zero page size defaults", page: 1, pageSize: 0, wantPage: 1, wantPageSize: constants.DefaultPageSize},
		{name: "page size capped at maximum", page: 1, pageSize: 500, wantPage: 1, wantPageSize: constants.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestPagination_Offset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, Pagination{Page: 3, PageSize: 20}.Offset())
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{name: "explicit values", query: "page=2&page_size=50", wantPage: 2, wantPageSize: 50},
		{name: "missing params use defaults", query: "", wantPage: constants.DefaultPage, wantPageSize: constants.DefaultPageSize},
		{name: "non-numeric values use defaults", query: "page=abc&page_size=xyz", wantPage: constants.DefaultPage, wantPageSize: constants.DefaultPageSize},
		{name: "oversized page size is capped", query: "page=1&page_size=9999", wantPage: 1, wantPageSize: constants.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/claims?"+tt.query, nil)

			p := ParsePagination(c)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}
