package controller

import (
	"strconv"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InterviewController struct {
	service *service.InterviewService
}

func NewInterviewController(s *service.InterviewService) *InterviewController {
	return &InterviewController{service: s}
}

type StartInterviewRequest struct {
	Role model.Role `json:"role" binding:"required"`
}

type SubmitAnswerRequest struct {
	QuestionIndex *int   `json:"questionIndex" binding:"required"`
	Answer        string `json:"answer"`
}

// GetRoles godoc
// @Summary 列出全部练习岗位
// @Tags 面试
// @Produce json
// @Success 200 {object} util.Response{data=[]model.RoleInfo}
// @Router /api/roles [get]
func (c *InterviewController) GetRoles(ctx *gin.Context) {
	util.Success(ctx, model.AllRoles())
}

// Start godoc
// @Summary 开始一场模拟面试
// @Description 校验岗位、检查当日配额、生成题目；成功后才消耗配额
// @Tags 面试
// @Accept json
// @Produce json
// @Param body body StartInterviewRequest true "练习岗位"
// @Success 200 {object} util.Response{data=model.InterviewSession}
// @Failure 429 {object} util.Response
// @Router /api/interview/start [post]
func (c *InterviewController) Start(ctx *gin.Context) {
	var req StartInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.service.Start(ctx.Request.Context(), ctx.ClientIP(), req.Role)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// Get godoc
// @Summary 查询面试会话
// @Tags 面试
// @Produce json
// @Param id path int true "会话ID"
// @Success 200 {object} util.Response{data=model.InterviewSession}
// @Failure 404 {object} util.Response
// @Router /api/interview/{id} [get]
func (c *InterviewController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid session id")
		return
	}

	session, err := c.service.Get(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// SubmitAnswer godoc
// @Summary 提交当前题目的回答并进入下一题
// @Tags 面试
// @Accept json
// @Produce json
// @Param id path int true "会话ID"
// @Param body body SubmitAnswerRequest true "回答内容"
// @Success 200 {object} util.Response{data=model.InterviewSession}
// @Router /api/interview/{id}/answer [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid session id")
		return
	}

	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.service.SubmitAnswer(id, *req.QuestionIndex, req.Answer)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// Previous godoc
// @Summary 返回上一题
// @Description 游标回退一位，已提交的回答不受影响
// @Tags 面试
// @Produce json
// @Param id path int true "会话ID"
// @Success 200 {object} util.Response{data=model.InterviewSession}
// @Router /api/interview/{id}/previous [post]
func (c *InterviewController) Previous(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid session id")
		return
	}

	session, err := c.service.Rewind(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// Complete godoc
// @Summary 结束面试并生成整场反馈
// @Tags 面试
// @Produce json
// @Param id path int true "会话ID"
// @Success 200 {object} util.Response{data=model.InterviewSession}
// @Router /api/interview/{id}/complete [post]
func (c *InterviewController) Complete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid session id")
		return
	}

	session, err := c.service.Complete(ctx.Request.Context(), id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, session)
}
