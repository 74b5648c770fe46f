package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		page, limit int
		want        Params
	}{
		{0, 0, Params{Page: 1, Limit: 20, Offset: 0}},
		{3, 10, Params{Page: 3, Limit: 10, Offset: 20}},
		{-2, 500, Params{Page: 1, Limit: 100, Offset: 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.page, tt.limit))
	}
}

func TestParse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/requests?page=2&limit=5", nil)
	assert.Equal(t, Params{Page: 2, Limit: 5, Offset: 5}, Parse(c))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/requests?page=abc", nil)
	assert.Equal(t, Params{Page: 1, Limit: 20, Offset: 0}, Parse(c))
}
