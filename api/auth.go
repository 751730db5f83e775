package api

import (
	"errors"
	"time"

	"moneytracker/database"
	"moneytracker/logger"
	"moneytracker/middleware"
	"moneytracker/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthHandler 当前用户与会话
type AuthHandler struct{}

// NewAuthHandler 创建认证处理器
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// GetUser 获取当前用户
// @Summary 获取当前用户
// @Description 返回当前登录用户的资料与余额
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "用户不存在"
// @Router /api/auth/user [get]
func (h *AuthHandler) GetUser(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "用户不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "获取用户失败"))
		return
	}
	Success(c, user)
}

// CreateSession 用身份提供方令牌换取会话 Cookie
// @Summary 创建会话
// @Description 校验 Bearer 令牌后写入 sid 会话 Cookie，之后的请求可不再携带令牌
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "登录成功"
// @Failure 401 {object} Response "未授权"
// @Failure 429 {object} Response "请求过于频繁"
// @Router /api/auth/session [post]
func (h *AuthHandler) CreateSession(c *gin.Context) {
	claims, err := middleware.ParseToken(middleware.BearerToken(c.Request))
	if err != nil {
		Unauthorized(c, "Unauthorized")
		return
	}
	user, err := middleware.EnsureUser(database.DB, claims)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "获取用户失败"))
		return
	}

	now := time.Now()
	if n, err := middleware.PurgeExpiredSessions(database.DB, now); err != nil {
		logger.Get().Warn("清理过期会话失败", zap.Error(err))
	} else if n > 0 {
		logger.Get().Debug("已清理过期会话", zap.Int64("count", n))
	}

	ttl := middleware.SessionTTL()
	sid, _, err := middleware.CreateSession(database.DB, claims, now, ttl)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "创建会话失败"))
		return
	}
	logger.Get().Info("会话已创建", zap.String("user_id", user.ID))

	setSessionCookie(c, sid, ttl)
	Success(c, user)
}

// DeleteSession 退出登录
// @Summary 删除会话
// @Description 删除当前会话并清除 Cookie
// @Tags 认证
// @Produce json
// @Success 200 {object} MessageResponse "已退出登录"
// @Router /api/auth/session [delete]
func (h *AuthHandler) DeleteSession(c *gin.Context) {
	if sid, err := c.Cookie(middleware.SessionCookieName); err == nil && sid != "" {
		if err := middleware.DeleteSession(database.DB, sid); err != nil {
			InternalError(c, SafeErrorMessage(err, "退出登录失败"))
			return
		}
	}
	clearSessionCookie(c)
	Message(c, "已退出登录")
}
