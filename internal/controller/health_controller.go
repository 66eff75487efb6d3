package controller

import (
	"time"

	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	sessions  *repository.SessionRepository
	aiEnabled bool
	startedAt time.Time
}

func NewHealthController(sessions *repository.SessionRepository, aiEnabled bool) *HealthController {
	return &HealthController{
		sessions:  sessions,
		aiEnabled: aiEnabled,
		startedAt: time.Now(),
	}
}

// Health godoc
// @Summary 服务健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status":        "ok",
		"uptimeSeconds": int(time.Since(c.startedAt).Seconds()),
		"sessions":      c.sessions.Count(),
		"aiConfigured":  c.aiEnabled,
	})
}
