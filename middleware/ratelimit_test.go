package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(2, time.Minute))
	router.POST("/api/auth/session", func(c *gin.Context) {
		c.String(200, "ok")
	})

	// 同一 IP 连续 3 次，第 3 次应返回 429
	doReq := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/auth/session", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w1 := doReq("192.168.1.1")
	w2 := doReq("192.168.1.1")
	w3 := doReq("192.168.1.1")

	assert.Equal(t, 200, w1.Code)
	assert.Equal(t, 200, w2.Code)
	assert.Equal(t, http.StatusTooManyRequests, w3.Code)
	assert.Contains(t, w3.Body.String(), "频繁")
	assert.Contains(t, w3.Body.String(), `"code":429`)

	// 不同 IP 互不影响
	assert.Equal(t, 200, doReq("192.168.1.2").Code)
	assert.Equal(t, 200, doReq("192.168.1.2").Code)
}

func TestSlidingWindow(t *testing.T) {
	w := newSlidingWindow(2, time.Minute)
	base := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, w.allow("a", base))
	assert.True(t, w.allow("a", base.Add(10*time.Second)))
	assert.False(t, w.allow("a", base.Add(20*time.Second)))

	// 第一条记录滑出窗口后放行一次
	assert.True(t, w.allow("a", base.Add(61*time.Second)))
	assert.False(t, w.allow("a", base.Add(62*time.Second)))

	w.cleanup(base.Add(10 * time.Minute))
	assert.Empty(t, w.hits)
}
