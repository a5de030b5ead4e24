package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/casaplex/casaplex/internal/shared/constants"
)

func ginContextWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParsePage_NonNumericFallsBackToFirstPage(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"numeric", "page=3", 3},
		{"non-numeric", "page=abc", 1},
		{"empty", "", 1},
		{"zero", "page=0", 1},
		{"negative", "page=-2", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ginContextWithQuery(t, tt.query)
			assert.Equal(t, tt.want, ParsePage(c))
		})
	}
}

func TestClampPage_PastEndDeliversLastPage(t *testing.T) {
	// 3 pages of 6 items
	assert.Equal(t, 3, ClampPage(999999, 18, 6))
	assert.Equal(t, 2, ClampPage(2, 18, 6))
	assert.Equal(t, 1, ClampPage(0, 18, 6))
	// empty result set still has one page
	assert.Equal(t, 1, ClampPage(5, 0, 6))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 6))
	assert.Equal(t, 1, TotalPages(6, 6))
	assert.Equal(t, 2, TotalPages(7, 6))
	assert.Equal(t, 3, TotalPages(18, 6))
	assert.Equal(t, 1, TotalPages(10, 0))
}

func TestValidatePagination(t *testing.T) {
	p := ValidatePagination(0, 0)
	assert.Equal(t, constants.DefaultPage, p.Page)
	assert.Equal(t, constants.DefaultPageSize, p.PageSize)

	p = ValidatePagination(2, constants.MaxPageSize+50)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, constants.MaxPageSize, p.PageSize)
}
