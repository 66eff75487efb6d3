package controller

import (
	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoleplayController struct {
	service *service.RoleplayService
}

func NewRoleplayController(s *service.RoleplayService) *RoleplayController {
	return &RoleplayController{service: s}
}

type AnalyzeRoleplayRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Question string `json:"question" binding:"required"`
	Response string `json:"response" binding:"required"`
}

// GetScenario godoc
// @Summary 随机获取一个 HR 对练场景
// @Description 取题不消耗配额，只有回答点评计入每日用量
// @Tags 对练
// @Produce json
// @Success 200 {object} util.Response{data=model.RoleplayScenario}
// @Router /api/roleplay/scenario [get]
func (c *RoleplayController) GetScenario(ctx *gin.Context) {
	util.Success(ctx, c.service.RandomScenario())
}

// Analyze godoc
// @Summary HR 对练回答点评
// @Tags 对练
// @Accept json
// @Produce json
// @Param body body AnalyzeRoleplayRequest true "场景、问题与回答"
// @Success 200 {object} util.Response{data=model.RoleplayFeedback}
// @Failure 429 {object} util.Response
// @Router /api/roleplay/analyze [post]
func (c *RoleplayController) Analyze(ctx *gin.Context) {
	var req AnalyzeRoleplayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	feedback, err := c.service.Analyze(ctx.Request.Context(), ctx.ClientIP(), req.Topic, req.Question, req.Response)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, feedback)
}
