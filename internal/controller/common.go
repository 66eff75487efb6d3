package controller

import (
	"errors"

	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// handleServiceError 服务层错误到 HTTP 响应的统一映射
// 配额耗尽和会话不存在原样透传，其余一律回 500 通用错误
func handleServiceError(c *gin.Context, err error) {
	if qe, ok := util.AsQuotaExceeded(err); ok {
		util.RateLimited(c, qe.Message)
		return
	}

	switch {
	case errors.Is(err, util.ErrSessionNotFound):
		util.NotFound(c, "Interview session not found")
	case errors.Is(err, util.ErrInvalidRole):
		util.BadRequest(c, "Invalid role specified")
	case errors.Is(err, util.ErrInvalidIndex):
		util.BadRequest(c, "Question index out of range")
	default:
		util.LogInternalError(c, err)
	}
}
