package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 错误响应结构
type Response struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"参数错误"`
}

// MessageResponse 仅含提示信息的成功响应
type MessageResponse struct {
	Message string `json:"message" example:"删除成功"`
}

// Success 成功响应，直接输出实体或列表
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message 带提示信息的成功响应
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 错误响应
func Unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	Error(c, http.StatusUnauthorized, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}
