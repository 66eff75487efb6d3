package controller

import (
	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PitchController struct {
	service *service.PitchService
}

func NewPitchController(s *service.PitchService) *PitchController {
	return &PitchController{service: s}
}

type AnalyzePitchRequest struct {
	PitchText string `json:"pitchText" binding:"required"`
}

// Analyze godoc
// @Summary 电梯演讲点评
// @Tags 演讲
// @Accept json
// @Produce json
// @Param body body AnalyzePitchRequest true "演讲文本"
// @Success 200 {object} util.Response{data=model.PitchFeedback}
// @Failure 429 {object} util.Response
// @Router /api/pitch/analyze [post]
func (c *PitchController) Analyze(ctx *gin.Context) {
	var req AnalyzePitchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	feedback, err := c.service.Analyze(ctx.Request.Context(), ctx.ClientIP(), req.PitchText)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, feedback)
}
