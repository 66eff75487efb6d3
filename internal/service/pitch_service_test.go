package service

import (
	"context"
	"testing"

	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPitchService(ai AIClient) (*PitchService, *UsageService) {
	usage := NewUsageService(config.QuotaConfig{
		InterviewsPerDay:   3,
		ResumeChecksPerDay: 2,
		PitchReviewsPerDay: 3,
		RoleplayPerDay:     3,
		SoftSkillsPerDay:   3,
	})
	return NewPitchService(usage, ai), usage
}

func TestAnalyzePitchClampsScores(t *testing.T) {
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		return `{
			"clarityScore": 120,
			"confidenceScore": -5,
			"fillerWords": -3,
			"structureScore": 75,
			"toneScore": 80,
			"improvementSuggestions": ["slow down"],
			"overallFeedback": "good pitch",
			"enhancedVersion": "Hi, I'm..."
		}`, nil
	}}
	s, usage := newPitchService(ai)

	feedback, err := s.Analyze(context.Background(), "1.2.3.4", "my pitch")
	require.NoError(t, err)

	assert.Equal(t, 100, feedback.ClarityScore)
	assert.Equal(t, 0, feedback.ConfidenceScore)
	assert.Equal(t, 0, feedback.FillerWords)
	assert.Equal(t, 75, feedback.StructureScore)

	snap := usage.Stats("1.2.3.4")
	assert.Equal(t, 2, snap.Remaining[model.ActionPitchReview])
}

func TestAnalyzePitchCapacityFallback(t *testing.T) {
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		return "", util.ErrUpstreamCapacity
	}}
	s, usage := newPitchService(ai)

	feedback, err := s.Analyze(context.Background(), "1.2.3.4", "my pitch")
	require.NoError(t, err)
	assert.Equal(t, demoPitchFeedback.EnhancedVersion, feedback.EnhancedVersion)

	snap := usage.Stats("1.2.3.4")
	assert.Equal(t, 2, snap.Remaining[model.ActionPitchReview])
}

func TestAnalyzePitchMissingSuggestions(t *testing.T) {
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		return `{"clarityScore": 80, "improvementSuggestions": []}`, nil
	}}
	s, usage := newPitchService(ai)

	_, err := s.Analyze(context.Background(), "1.2.3.4", "my pitch")
	require.Error(t, err)

	// 结构异常不消耗配额
	snap := usage.Stats("1.2.3.4")
	assert.Equal(t, 3, snap.Remaining[model.ActionPitchReview])
}
