package api

import (
	"errors"

	"moneytracker/config"
	"moneytracker/logger"
	"moneytracker/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情，避免信息泄露
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}

// handleServiceError 将业务错误映射为 HTTP 状态码
func handleServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, "记录不存在")
	case errors.Is(err, service.ErrInvalidAmount):
		BadRequest(c, err.Error())
	default:
		logger.Get().Error(fallback,
			zap.String("path", c.FullPath()),
			zap.Error(err))
		InternalError(c, SafeErrorMessage(err, fallback))
	}
}

// pathID 校验路径中的 UUID，失败时已写入 400
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		BadRequest(c, "无效的ID")
		return "", false
	}
	return id, true
}
