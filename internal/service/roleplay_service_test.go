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

func newRoleplayService(ai AIClient) (*RoleplayService, *UsageService) {
	usage := NewUsageService(config.QuotaConfig{
		InterviewsPerDay:   3,
		ResumeChecksPerDay: 2,
		PitchReviewsPerDay: 3,
		RoleplayPerDay:     3,
		SoftSkillsPerDay:   3,
	})
	return NewRoleplayService(usage, ai), usage
}

func TestRandomScenarioComesFromPool(t *testing.T) {
	s, _ := newRoleplayService(nil)

	topics := make(map[string][]string, len(hrScenarios))
	for _, sc := range hrScenarios {
		topics[sc.Topic] = sc.Questions
	}

	for i := 0; i < 20; i++ {
		scenario := s.RandomScenario()
		questions, ok := topics[scenario.Topic]
		require.True(t, ok, "unknown topic %q", scenario.Topic)
		assert.Equal(t, questions, scenario.Questions)
	}
}

func TestRandomScenarioReturnsCopy(t *testing.T) {
	s, _ := newRoleplayService(nil)

	scenario := s.RandomScenario()
	scenario.Questions[0] = "tampered"

	for _, sc := range hrScenarios {
		for _, q := range sc.Questions {
			assert.NotEqual(t, "tampered", q)
		}
	}
}

func TestAnalyzeRoleplay(t *testing.T) {
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		return `{
			"persuasivenessScore": 88,
			"structureScore": 75,
			"communicationScore": 92,
			"improvementSuggestions": ["use STAR"],
			"strengthsIdentified": ["confident"],
			"overallFeedback": "well done"
		}`, nil
	}}
	s, usage := newRoleplayService(ai)

	feedback, err := s.Analyze(context.Background(), "1.2.3.4", "Team Leadership and Collaboration", "question", "answer")
	require.NoError(t, err)
	assert.Equal(t, 88, feedback.PersuasivenessScore)

	snap := usage.Stats("1.2.3.4")
	assert.Equal(t, 2, snap.Remaining[model.ActionRoleplay])
}

func TestAnalyzeRoleplayCapacityFallback(t *testing.T) {
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		return "", util.ErrUpstreamCapacity
	}}
	s, usage := newRoleplayService(ai)

	feedback, err := s.Analyze(context.Background(), "1.2.3.4", "topic", "question", "answer")
	require.NoError(t, err)
	assert.Equal(t, demoRoleplayFeedback.OverallFeedback, feedback.OverallFeedback)

	snap := usage.Stats("1.2.3.4")
	assert.Equal(t, 2, snap.Remaining[model.ActionRoleplay])
}
