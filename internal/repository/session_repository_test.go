package repository

import (
	"testing"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	r := NewSessionRepository()

	first := r.Create(model.RoleProductManagement)
	second := r.Create(model.RoleQATesting)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, model.StatusInProgress, first.Status)
	assert.Equal(t, 0, first.CurrentQuestionIndex)
	assert.NotNil(t, first.Questions)
	assert.NotNil(t, first.Responses)
	assert.Equal(t, 2, r.Count())
}

func TestGetUnknownSession(t *testing.T) {
	r := NewSessionRepository()

	_, err := r.Get(42)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestRecordAnswerAdvancesCursor(t *testing.T) {
	r := NewSessionRepository()
	s := r.Create(model.RoleProductManagement)
	_, err := r.AttachQuestions(s.ID, []string{"q1", "q2", "q3"})
	require.NoError(t, err)

	got, err := r.RecordAnswer(s.ID, 0, "my answer")
	require.NoError(t, err)
	assert.Equal(t, []string{"my answer"}, got.Responses)
	assert.Equal(t, 1, got.CurrentQuestionIndex)

	// 重答同一题覆盖旧回答，游标重新指向下一题
	got, err = r.RecordAnswer(s.ID, 0, "better answer")
	require.NoError(t, err)
	assert.Equal(t, "better answer", got.Responses[0])
	assert.Equal(t, 1, got.CurrentQuestionIndex)
}

func TestRecordAnswerNegativeIndex(t *testing.T) {
	r := NewSessionRepository()
	s := r.Create(model.RoleProductManagement)

	_, err := r.RecordAnswer(s.ID, -1, "answer")
	assert.ErrorIs(t, err, util.ErrInvalidIndex)
}

func TestRecordAnswerPastEndBackfills(t *testing.T) {
	r := NewSessionRepository()
	s := r.Create(model.RoleProductManagement)
	_, err := r.AttachQuestions(s.ID, []string{"q1", "q2"})
	require.NoError(t, err)

	// 跳到第 4 题：中间未答的题位用空串补齐
	got, err := r.RecordAnswer(s.ID, 3, "late answer")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "", "", "late answer"}, got.Responses)
	assert.Equal(t, 4, got.CurrentQuestionIndex)
}

func TestRewindFloorsAtZero(t *testing.T) {
	r := NewSessionRepository()
	s := r.Create(model.RoleProductManagement)
	_, err := r.AttachQuestions(s.ID, []string{"q1", "q2"})
	require.NoError(t, err)

	_, err = r.RecordAnswer(s.ID, 0, "a1")
	require.NoError(t, err)

	got, err := r.Rewind(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentQuestionIndex)
	assert.Equal(t, "a1", got.Responses[0], "回退不应清除已记录的回答")

	// 已在第 0 题时回退保持在 0
	got, err = r.Rewind(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentQuestionIndex)
}

func TestCompleteSetsFeedbackAndTimestamp(t *testing.T) {
	r := NewSessionRepository()
	s := r.Create(model.RoleProductManagement)

	fb := &model.InterviewFeedback{OverallScore: 78, Grade: "B+"}
	got, err := r.Complete(s.ID, fb, 78)
	require.NoError(t, err)

	assert.Equal(t, model.StatusCompleted, got.Status)
	require.NotNil(t, got.OverallScore)
	assert.Equal(t, 78, *got.OverallScore)
	assert.NotNil(t, got.CompletedAt)
	require.NotNil(t, got.Feedback)
	assert.Equal(t, "B+", got.Feedback.Grade)
}

func TestReturnedSessionIsIsolatedCopy(t *testing.T) {
	r := NewSessionRepository()
	s := r.Create(model.RoleProductManagement)
	_, err := r.AttachQuestions(s.ID, []string{"q1"})
	require.NoError(t, err)

	got, err := r.Get(s.ID)
	require.NoError(t, err)

	// 改动副本不应影响存储内的会话
	got.Questions[0] = "tampered"
	got.CurrentQuestionIndex = 99

	fresh, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "q1", fresh.Questions[0])
	assert.Equal(t, 0, fresh.CurrentQuestionIndex)
}
