package controller

import (
	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResumeController struct {
	service *service.ResumeService
}

func NewResumeController(s *service.ResumeService) *ResumeController {
	return &ResumeController{service: s}
}

type AnalyzeResumeRequest struct {
	ResumeText     string `json:"resumeText" binding:"required,min=100"`
	JobDescription string `json:"jobDescription"`
}

// Analyze godoc
// @Summary 简历诊断
// @Description 可选提供目标职位描述做匹配度分析；成功才消耗配额
// @Tags 简历
// @Accept json
// @Produce json
// @Param body body AnalyzeResumeRequest true "简历文本（至少100字符）"
// @Success 200 {object} util.Response{data=model.ResumeAnalysis}
// @Failure 429 {object} util.Response
// @Router /api/resume/analyze [post]
func (c *ResumeController) Analyze(ctx *gin.Context) {
	var req AnalyzeResumeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Resume text must be at least 100 characters")
		return
	}

	analysis, err := c.service.Analyze(ctx.Request.Context(), ctx.ClientIP(), req.ResumeText, req.JobDescription)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, analysis)
}
