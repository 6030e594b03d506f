package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexushq/nexus-service/internal/logic"
)

// 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// LogicError 将业务错误映射为HTTP响应：
// 校验失败→400，未找到→404，其余→500
func LogicError(c *gin.Context, err error) {
	switch {
	case logic.IsValidation(err):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case logic.IsNotFound(err):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
