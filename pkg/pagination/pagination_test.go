package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/applications"+query, nil)
	return Parse(c)
}

func TestParseDefaults(t *testing.T) {
	p := paramsFor(t, "")
	assert.Equal(t, DefaultSkip, p.Skip)
	assert.Equal(t, DefaultLimit, p.Limit)
}

func TestParseExplicitValues(t *testing.T) {
	p := paramsFor(t, "?skip=40&limit=20")
	assert.Equal(t, 40, p.Skip)
	assert.Equal(t, 20, p.Limit)
}

func TestParseClampsOutOfRange(t *testing.T) {
	p := paramsFor(t, "?skip=-5&limit=10000")
	assert.Equal(t, DefaultSkip, p.Skip)
	assert.Equal(t, MaxLimit, p.Limit)

	p = paramsFor(t, "?limit=0")
	assert.Equal(t, DefaultLimit, p.Limit)
}

func TestParseIgnoresGarbage(t *testing.T) {
	p := paramsFor(t, "?skip=abc&limit=xyz")
	assert.Equal(t, DefaultSkip, p.Skip)
	assert.Equal(t, DefaultLimit, p.Limit)
}
