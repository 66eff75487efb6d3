package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAI 按 Operation 返回预设应答的生成器替身
type fakeAI struct {
	complete func(req ChatRequest) (string, error)
}

func (f *fakeAI) Complete(_ context.Context, req ChatRequest) (string, error) {
	return f.complete(req)
}

const validQuestionsJSON = `{"questions":["q1","q2","q3","q4","q5"]}`

const validFeedbackJSON = `{
	"overallScore": 85,
	"grade": "A-",
	"communication": 4.5,
	"strengths": [{"title": "Clarity", "description": "Clear structure"}],
	"improvements": [{"title": "Depth", "description": "Add detail", "tip": "Use STAR"}],
	"questionAnalysis": [],
	"nextSteps": {"practiceAreas": ["a"], "resources": ["b"]}
}`

func newInterviewService(ai AIClient) (*InterviewService, *UsageService) {
	usage := NewUsageService(config.QuotaConfig{
		InterviewsPerDay:   3,
		ResumeChecksPerDay: 2,
		PitchReviewsPerDay: 3,
		RoleplayPerDay:     3,
		SoftSkillsPerDay:   3,
	})
	return NewInterviewService(repository.NewSessionRepository(), usage, ai), usage
}

func TestStartInterview(t *testing.T) {
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		return validQuestionsJSON, nil
	}}
	s, usage := newInterviewService(ai)

	session, err := s.Start(context.Background(), "1.2.3.4", model.RoleProductManagement)
	require.NoError(t, err)

	assert.Equal(t, 1, session.ID)
	assert.Equal(t, model.StatusInProgress, session.Status)
	assert.Len(t, session.Questions, 5)

	snap := usage.Stats("1.2.3.4")
	assert.Equal(t, 2, snap.Remaining[model.ActionInterview])
}

func TestStartInterviewInvalidRole(t *testing.T) {
	s, usage := newInterviewService(&fakeAI{complete: func(req ChatRequest) (string, error) {
		t.Fatal("generator should not be called for an invalid role")
		return "", nil
	}})

	_, err := s.Start(context.Background(), "1.2.3.4", model.Role("astronaut"))
	assert.ErrorIs(t, err, util.ErrInvalidRole)

	snap := usage.Stats("1.2.3.4")
	assert.Equal(t, 3, snap.Remaining[model.ActionInterview])
}

func TestStartInterviewQuotaExhausted(t *testing.T) {
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		return validQuestionsJSON, nil
	}}
	s, _ := newInterviewService(ai)

	for i := 0; i < 3; i++ {
		_, err := s.Start(context.Background(), "1.2.3.4", model.RoleProductManagement)
		require.NoError(t, err)
	}

	_, err := s.Start(context.Background(), "1.2.3.4", model.RoleProductManagement)
	qe, ok := util.AsQuotaExceeded(err)
	require.True(t, ok, "expected quota error, got %v", err)
	assert.Equal(t, model.ActionInterview, qe.Action)
	assert.Contains(t, qe.Message, "daily limit of 3 practice interviews")
}

func TestStartInterviewCapacityFallback(t *testing.T) {
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		return "", fmt.Errorf("generator overloaded: %w", util.ErrUpstreamCapacity)
	}}
	s, usage := newInterviewService(ai)

	// 容量类故障对用户不可见：演示题目 + 正常记账
	session, err := s.Start(context.Background(), "1.2.3.4", model.RoleQATesting)
	require.NoError(t, err)
	assert.Len(t, session.Questions, 5)

	snap := usage.Stats("1.2.3.4")
	assert.Equal(t, 2, snap.Remaining[model.ActionInterview])
}

func TestStartInterviewOtherErrorPreservesQuota(t *testing.T) {
	upstreamErr := errors.New("401 invalid api key")
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		return "", upstreamErr
	}}
	s, usage := newInterviewService(ai)

	_, err := s.Start(context.Background(), "1.2.3.4", model.RoleProductManagement)
	assert.ErrorIs(t, err, upstreamErr)

	// 非容量类故障不消耗配额，用户可以直接重试
	snap := usage.Stats("1.2.3.4")
	assert.Equal(t, 3, snap.Remaining[model.ActionInterview])
}

func TestCompleteInterview(t *testing.T) {
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		if req.Operation == "generate_questions" {
			return validQuestionsJSON, nil
		}
		return validFeedbackJSON, nil
	}}
	s, usage := newInterviewService(ai)

	session, err := s.Start(context.Background(), "1.2.3.4", model.RoleProductManagement)
	require.NoError(t, err)

	_, err = s.SubmitAnswer(session.ID, 0, "my answer")
	require.NoError(t, err)

	completed, err := s.Complete(context.Background(), session.ID)
	require.NoError(t, err)

	assert.Equal(t, model.StatusCompleted, completed.Status)
	require.NotNil(t, completed.OverallScore)
	assert.Equal(t, 85, *completed.OverallScore)
	require.NotNil(t, completed.Feedback)
	assert.Equal(t, "A-", completed.Feedback.Grade)

	// 完成不额外记账，配额只在开始时消耗一次
	snap := usage.Stats("1.2.3.4")
	assert.Equal(t, 2, snap.Remaining[model.ActionInterview])
}

func TestCompleteInterviewCapacityFallback(t *testing.T) {
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		if req.Operation == "generate_questions" {
			return validQuestionsJSON, nil
		}
		return "", util.ErrUpstreamCapacity
	}}
	s, _ := newInterviewService(ai)

	session, err := s.Start(context.Background(), "1.2.3.4", model.RoleProductManagement)
	require.NoError(t, err)

	completed, err := s.Complete(context.Background(), session.ID)
	require.NoError(t, err)

	assert.Equal(t, model.StatusCompleted, completed.Status)
	require.NotNil(t, completed.OverallScore)
	assert.Equal(t, 78, *completed.OverallScore)
	assert.Equal(t, "B+", completed.Feedback.Grade)
}

func TestCompleteUnknownSession(t *testing.T) {
	s, _ := newInterviewService(&fakeAI{complete: func(req ChatRequest) (string, error) {
		return validFeedbackJSON, nil
	}})

	_, err := s.Complete(context.Background(), 404)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestMalformedQuestionPayload(t *testing.T) {
	ai := &fakeAI{complete: func(req ChatRequest) (string, error) {
		return "not json at all", nil
	}}
	s, usage := newInterviewService(ai)

	_, err := s.Start(context.Background(), "1.2.3.4", model.RoleProductManagement)
	require.Error(t, err)

	snap := usage.Stats("1.2.3.4")
	assert.Equal(t, 3, snap.Remaining[model.ActionInterview])
}
