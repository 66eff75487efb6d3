package controller

import (
	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SoftSkillController struct {
	service *service.SoftSkillService
}

func NewSoftSkillController(s *service.SoftSkillService) *SoftSkillController {
	return &SoftSkillController{service: s}
}

type AnalyzeSoftSkillRequest struct {
	Question string `json:"question" binding:"required"`
	Response string `json:"response" binding:"required"`
}

// GetQuestions godoc
// @Summary 随机获取 3 个软技能场景题
// @Tags 软技能
// @Produce json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/soft-skills/questions [get]
func (c *SoftSkillController) GetQuestions(ctx *gin.Context) {
	util.Success(ctx, c.service.RandomQuestions())
}

// Analyze godoc
// @Summary 软技能场景回答点评
// @Tags 软技能
// @Accept json
// @Produce json
// @Param body body AnalyzeSoftSkillRequest true "场景题与回答"
// @Success 200 {object} util.Response{data=model.SoftSkillFeedback}
// @Failure 429 {object} util.Response
// @Router /api/soft-skills/analyze [post]
func (c *SoftSkillController) Analyze(ctx *gin.Context) {
	var req AnalyzeSoftSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	feedback, err := c.service.Analyze(ctx.Request.Context(), ctx.ClientIP(), req.Question, req.Response)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, feedback)
}
