package controller

import (
	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	service *service.FeedbackService
}

func NewFeedbackController(s *service.FeedbackService) *FeedbackController {
	return &FeedbackController{service: s}
}

type SubmitFeedbackRequest struct {
	SessionID   *int       `json:"sessionId"`
	Role        *model.Role `json:"role"`
	Rating      int        `json:"rating" binding:"required,min=1,max=5"`
	Experience  string     `json:"experience"`
	Suggestions string     `json:"suggestions"`
	FollowUp    string     `json:"followUp"`
}

// Submit godoc
// @Summary 提交产品使用反馈
// @Tags 反馈
// @Accept json
// @Produce json
// @Param body body SubmitFeedbackRequest true "反馈内容"
// @Success 201 {object} util.Response{data=model.UserFeedback}
// @Failure 400 {object} util.Response
// @Router /api/feedback [post]
func (c *FeedbackController) Submit(ctx *gin.Context) {
	var req SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Rating must be between 1 and 5")
		return
	}

	created, err := c.service.Submit(model.UserFeedback{
		SessionID:   req.SessionID,
		Role:        req.Role,
		Rating:      req.Rating,
		Experience:  req.Experience,
		Suggestions: req.Suggestions,
		FollowUp:    req.FollowUp,
	})
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, created)
}

// List godoc
// @Summary 查看全部反馈（管理员）
// @Tags 反馈
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.UserFeedback}
// @Failure 401 {object} util.Response
// @Router /api/admin/feedback [get]
func (c *FeedbackController) List(ctx *gin.Context) {
	util.Success(ctx, c.service.List())
}
