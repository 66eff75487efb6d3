package service

import (
	"context"
	"strings"
	"testing"

	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResumeAnalysisJSON = `{
	"matchScore": 140,
	"missingKeywords": ["SQL", "Python"],
	"improvementSuggestions": ["quantify achievements"],
	"improvedBulletPoints": ["Led team of 5"],
	"overallFeedback": "Solid resume"
}`

func newResumeService(ai AIClient) (*ResumeService, *UsageService) {
	usage := NewUsageService(config.QuotaConfig{
		InterviewsPerDay:   3,
		ResumeChecksPerDay: 2,
		PitchReviewsPerDay: 3,
		RoleplayPerDay:     3,
		SoftSkillsPerDay:   3,
	})
	return NewResumeService(usage, ai), usage
}

func TestAnalyzeResumeClampsScore(t *testing.T) {
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		return validResumeAnalysisJSON, nil
	}}
	s, usage := newResumeService(ai)

	analysis, err := s.Analyze(context.Background(), "1.2.3.4", "resume text", "")
	require.NoError(t, err)
	assert.Equal(t, 100, analysis.MatchScore)

	snap := usage.Stats("1.2.3.4")
	assert.Equal(t, 1, snap.Remaining[model.ActionResumeCheck])
}

func TestAnalyzeResumeQuota(t *testing.T) {
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		return validResumeAnalysisJSON, nil
	}}
	s, _ := newResumeService(ai)

	for i := 0; i < 2; i++ {
		_, err := s.Analyze(context.Background(), "1.2.3.4", "resume text", "")
		require.NoError(t, err)
	}

	_, err := s.Analyze(context.Background(), "1.2.3.4", "resume text", "")
	qe, ok := util.AsQuotaExceeded(err)
	require.True(t, ok)
	assert.Equal(t, model.ActionResumeCheck, qe.Action)
	assert.Equal(t, "Resume check limit reached for today. Upgrade to Pro for unlimited access.", qe.Message)
}

func TestAnalyzeResumeCapacityFallback(t *testing.T) {
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		return "", util.ErrUpstreamCapacity
	}}
	s, usage := newResumeService(ai)

	analysis, err := s.Analyze(context.Background(), "1.2.3.4", "resume text", "")
	require.NoError(t, err)
	assert.Equal(t, demoResumeAnalysis.MatchScore, analysis.MatchScore)
	assert.Equal(t, demoResumeAnalysis.OverallFeedback, analysis.OverallFeedback)

	// 降级内容也算一次使用
	snap := usage.Stats("1.2.3.4")
	assert.Equal(t, 1, snap.Remaining[model.ActionResumeCheck])
}

func TestResumePromptIncludesJobDescription(t *testing.T) {
	var gotPrompt string
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		gotPrompt = req.Prompt
		return validResumeAnalysisJSON, nil
	}}
	s, _ := newResumeService(ai)

	// 短 JD 按无 JD 处理
	_, err := s.Analyze(context.Background(), "1.2.3.4", "resume text", "short jd")
	require.NoError(t, err)
	assert.NotContains(t, gotPrompt, "JOB DESCRIPTION:")

	jd := strings.Repeat("We are hiring a data analyst. ", 5)
	_, err = s.Analyze(context.Background(), "1.2.3.4", "resume text", jd)
	require.NoError(t, err)
	assert.Contains(t, gotPrompt, "JOB DESCRIPTION:")
	assert.Contains(t, gotPrompt, "matchScore")
}
