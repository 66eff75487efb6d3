package app

import (
	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/middleware"
	"interview_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由（按客户端 IP 计配额，无需登录）
	api := router.Group("/api")
	{
		api.GET("/health", c.health.Health)
		api.GET("/roles", c.interview.GetRoles)
		api.GET("/usage", c.usage.GetUsage)

		interview := api.Group("/interview")
		{
			interview.POST("/start", c.interview.Start)
			interview.GET("/:id", c.interview.Get)
			interview.POST("/:id/answer", c.interview.SubmitAnswer)
			interview.POST("/:id/previous", c.interview.Previous)
			interview.POST("/:id/complete", c.interview.Complete)
		}

		api.POST("/resume/analyze", c.resume.Analyze)
		api.POST("/pitch/analyze", c.pitch.Analyze)

		roleplay := api.Group("/roleplay")
		{
			roleplay.GET("/scenario", c.roleplay.GetScenario)
			roleplay.POST("/analyze", c.roleplay.Analyze)
		}

		softSkills := api.Group("/soft-skills")
		{
			softSkills.GET("/questions", c.softSkill.GetQuestions)
			softSkills.POST("/analyze", c.softSkill.Analyze)
		}

		api.POST("/feedback", c.feedback.Submit)
	}

	// 2. 管理员路由
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware())
	{
		admin.POST("/usage/reset", c.usage.ResetUsage)
		admin.GET("/feedback", c.feedback.List)
	}
}
