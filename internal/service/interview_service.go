package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/util"
	"interview_prep_backend/pkg/logger"
	"interview_prep_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// InterviewService 面试流程编排：
// 校验 -> 配额检查 -> 领域动作（生成器调用不持任何锁）-> 记账 -> 返回
type InterviewService struct {
	sessions *repository.SessionRepository
	usage    *UsageService
	ai       AIClient
}

func NewInterviewService(sessions *repository.SessionRepository, usage *UsageService, ai AIClient) *InterviewService {
	return &InterviewService{sessions: sessions, usage: usage, ai: ai}
}

// Start 新建面试会话并生成题目
// 生成器容量类故障降级为演示题目且照常记账；
// 其他故障直接上抛且不消耗配额，留给用户重试
func (s *InterviewService) Start(ctx context.Context, clientID string, role model.Role) (*model.InterviewSession, error) {
	if !model.ValidRole(role) {
		return nil, util.ErrInvalidRole
	}

	if ok, msg := s.usage.CheckAllowed(clientID, model.ActionInterview); !ok {
		monitoring.QuotaRejections.WithLabelValues(string(model.ActionInterview)).Inc()
		return nil, &util.QuotaExceededError{Action: model.ActionInterview, Message: msg}
	}

	session := s.sessions.Create(role)

	questions, err := s.generateQuestions(ctx, role)
	if err != nil {
		if errors.Is(err, util.ErrUpstreamCapacity) {
			logger.Log.Warn("generator at capacity, serving demo questions",
				zap.String("role", string(role)), zap.Int("sessionId", session.ID))
			monitoring.FallbackServed.WithLabelValues("generate_questions").Inc()
			questions = demoQuestions(role)
		} else {
			logger.Log.Error("question generation failed",
				zap.String("action", string(model.ActionInterview)),
				zap.Int("sessionId", session.ID), zap.Error(err))
			return nil, err
		}
	}

	updated, err := s.sessions.AttachQuestions(session.ID, questions)
	if err != nil {
		return nil, err
	}

	s.usage.Record(clientID, model.ActionInterview)
	return updated, nil
}

func (s *InterviewService) Get(id int) (*model.InterviewSession, error) {
	return s.sessions.Get(id)
}

// SubmitAnswer 记录回答并推进游标，不受配额约束
func (s *InterviewService) SubmitAnswer(id, questionIndex int, answer string) (*model.InterviewSession, error) {
	return s.sessions.RecordAnswer(id, questionIndex, answer)
}

// Rewind "上一题"导航，不覆盖已有回答
func (s *InterviewService) Rewind(id int) (*model.InterviewSession, error) {
	return s.sessions.Rewind(id)
}

// Complete 生成整场反馈并结束会话
// 面试配额在 Start 已消耗，这里不再记账；
// 容量类故障降级为演示反馈，会话仍正常完成
func (s *InterviewService) Complete(ctx context.Context, id int) (*model.InterviewSession, error) {
	session, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	feedback, err := s.analyzeInterview(ctx, session.Role, session.Questions, session.Responses)
	if err != nil {
		if errors.Is(err, util.ErrUpstreamCapacity) {
			logger.Log.Warn("generator at capacity, serving demo feedback",
				zap.String("role", string(session.Role)), zap.Int("sessionId", id))
			monitoring.FallbackServed.WithLabelValues("analyze_interview").Inc()
			feedback = demoInterviewFeedback(session.Questions)
		} else {
			logger.Log.Error("interview analysis failed",
				zap.String("action", string(model.ActionInterview)),
				zap.Int("sessionId", id), zap.Error(err))
			return nil, err
		}
	}

	return s.sessions.Complete(id, feedback, feedback.OverallScore)
}

func (s *InterviewService) generateQuestions(ctx context.Context, role model.Role) ([]string, error) {
	info, _ := model.RoleMeta(role)

	prompt := fmt.Sprintf(`Generate 5 interview questions for a %s entry-level position.

The questions should be:
- Appropriate for freshers and recent graduates
- Focused on practical scenarios they might face in the role
- Testing both technical knowledge and soft skills
- Realistic for someone with 0-2 years of experience

Role context: %s

Return the response as JSON in this exact format:
{
  "questions": [
    "Question 1 text here",
    "Question 2 text here",
    "Question 3 text here",
    "Question 4 text here",
    "Question 5 text here"
  ]
}`, info.Title, info.Description)

	content, err := s.ai.Complete(ctx, ChatRequest{
		Operation:   "generate_questions",
		System:      "You are an expert interview coach specializing in entry-level tech and business roles. Generate realistic, practical interview questions that help assess candidates' potential and thinking process.",
		Prompt:      prompt,
		Temperature: 0.7,
		MaxTokens:   400,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("invalid question payload from AI: %w", err)
	}
	if len(result.Questions) == 0 {
		return nil, errors.New("AI returned no questions")
	}
	return result.Questions, nil
}

func (s *InterviewService) analyzeInterview(ctx context.Context, role model.Role, questions, responses []string) (*model.InterviewFeedback, error) {
	info, _ := model.RoleMeta(role)

	var qa strings.Builder
	for i, q := range questions {
		answer := "No response provided"
		if i < len(responses) && responses[i] != "" {
			answer = responses[i]
		}
		fmt.Fprintf(&qa, "\nQuestion %d: %s\nResponse: %s\n", i+1, q, answer)
	}

	prompt := fmt.Sprintf(`Analyze these interview responses for a %s position and provide detailed feedback.

Role: %s
Description: %s

Questions and Responses:
%s

Provide comprehensive feedback in this exact JSON format:
{
  "overallScore": number (0-100),
  "grade": "letter grade (A+, A, A-, B+, B, B-, C+, C, C-, D, F)",
  "communication": number (0-5, one decimal place),
  "strengths": [
    {"title": "Strength name", "description": "Detailed explanation of what they did well"}
  ],
  "improvements": [
    {"title": "Area for improvement", "description": "What needs work and why it matters", "tip": "Specific actionable advice"}
  ],
  "questionAnalysis": [
    {"questionIndex": number, "question": "question text", "score": number (0-10), "whatWorked": ["point 1"], "couldImprove": ["point 1"]}
  ],
  "nextSteps": {
    "practiceAreas": ["area 1", "area 2", "area 3"],
    "resources": ["resource 1", "resource 2", "resource 3"]
  }
}

Focus on:
- Constructive, encouraging feedback
- Specific, actionable improvements
- Recognition of effort and potential
- Entry-level appropriate expectations
- Real-world applicability`, info.Title, info.Title, info.Description, qa.String())

	content, err := s.ai.Complete(ctx, ChatRequest{
		Operation:   "analyze_interview",
		System:      "You are a senior hiring manager and interview coach with expertise in evaluating entry-level candidates. Provide detailed, constructive feedback that helps candidates improve while recognizing their potential.",
		Prompt:      prompt,
		Temperature: 0.3,
		MaxTokens:   800,
	})
	if err != nil {
		return nil, err
	}

	var feedback model.InterviewFeedback
	if err := json.Unmarshal([]byte(content), &feedback); err != nil {
		return nil, fmt.Errorf("invalid feedback payload from AI: %w", err)
	}
	if feedback.OverallScore == 0 || len(feedback.Strengths) == 0 || len(feedback.Improvements) == 0 {
		return nil, errors.New("invalid feedback structure received from AI")
	}
	return &feedback, nil
}
