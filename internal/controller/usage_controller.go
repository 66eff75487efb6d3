package controller

import (
	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"
	"interview_prep_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UsageController struct {
	service *service.UsageService
}

func NewUsageController(s *service.UsageService) *UsageController {
	return &UsageController{service: s}
}

// GetUsage godoc
// @Summary 查询当前客户端当日剩余配额
// @Tags 配额
// @Produce json
// @Success 200 {object} util.Response{data=model.UsageSnapshot}
// @Router /api/usage [get]
func (c *UsageController) GetUsage(ctx *gin.Context) {
	util.Success(ctx, c.service.Stats(ctx.ClientIP()))
}

// ResetUsage godoc
// @Summary 清空所有客户端的当日配额计数（管理员）
// @Tags 配额
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/admin/usage/reset [post]
func (c *UsageController) ResetUsage(ctx *gin.Context) {
	c.service.ResetAll()
	claims := util.GetClaimsFromContext(ctx)
	if claims != nil {
		logger.Log.Info("管理员重置配额", zap.String("subject", claims.Subject))
	}
	util.Success(ctx, gin.H{"reset": true})
}
