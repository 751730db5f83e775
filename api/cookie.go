package api

import (
	"net/http"
	"time"

	"moneytracker/config"
	"moneytracker/middleware"

	"github.com/gin-gonic/gin"
)

// getCookieOptions 根据运行模式返回 Cookie 的安全选项
// release 模式或配置了 cookie_secure 时启用 Secure（仅 HTTPS 传输）
func getCookieOptions() (secure bool, sameSite http.SameSite) {
	cfg := config.GetConfig()
	if cfg != nil && cfg.Server.Mode == "release" {
		secure = true
	}
	if middleware.CookieSecure() {
		secure = true
	}
	// SameSite=Lax: 防止跨站 POST 请求携带 Cookie，同时允许同站导航
	sameSite = http.SameSiteLaxMode
	return
}

// setSessionCookie 写入 HttpOnly 会话 Cookie
func setSessionCookie(c *gin.Context, sid string, ttl time.Duration) {
	secure, sameSite := getCookieOptions()
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.SessionCookieName, sid, int(ttl.Seconds()), "/", "", secure, true)
}

// clearSessionCookie 让浏览器删除会话 Cookie
func clearSessionCookie(c *gin.Context) {
	secure, sameSite := getCookieOptions()
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", secure, true)
}
