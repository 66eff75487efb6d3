package repository

import (
	"sync"
	"time"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/util"
)

// SessionRepository 面试会话的进程内存储
// id 为自增整数，进程生命周期内不复用；重启后全部丢失（刻意为之）
// 所有临界区都是 O(1)，绝不跨越生成器调用持锁
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[int]*model.InterviewSession
	nextID   int
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[int]*model.InterviewSession),
		nextID:   1,
	}
}

// Create 新建会话，岗位合法性由编排层负责校验
func (r *SessionRepository) Create(role model.Role) *model.InterviewSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	session := &model.InterviewSession{
		ID:                   id,
		Role:                 role,
		Status:               model.StatusInProgress,
		CurrentQuestionIndex: 0,
		Questions:            []string{},
		Responses:            []string{},
		CreatedAt:            time.Now(),
	}
	r.sessions[id] = session
	return cloneSession(session)
}

// Get 返回会话的独立副本，避免调用方与存储共享底层切片
func (r *SessionRepository) Get(id int) (*model.InterviewSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	return cloneSession(session), nil
}

// AttachQuestions 写入题目，会话创建后立即调用一次
func (r *SessionRepository) AttachQuestions(id int, questions []string) (*model.InterviewSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}

	session.Questions = append([]string{}, questions...)
	return cloneSession(session), nil
}

// RecordAnswer 记录第 questionIndex 题的回答并把游标推进到下一题
// 负数下标拒绝；超出题目数量的下标接受并用空串补位——编排层依赖
// "游标越过最后一题"来判定面试答完，这里刻意不做上限截断
func (r *SessionRepository) RecordAnswer(id, questionIndex int, answer string) (*model.InterviewSession, error) {
	if questionIndex < 0 {
		return nil, util.ErrInvalidIndex
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}

	for len(session.Responses) <= questionIndex {
		session.Responses = append(session.Responses, "")
	}
	session.Responses[questionIndex] = answer
	session.CurrentQuestionIndex = questionIndex + 1

	return cloneSession(session), nil
}

// Rewind 游标回退一题，下限 0；不改动已记录的回答
func (r *SessionRepository) Rewind(id int) (*model.InterviewSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}

	if session.CurrentQuestionIndex > 0 {
		session.CurrentQuestionIndex--
	}
	return cloneSession(session), nil
}

// Complete 会话转入 completed 并落反馈
// 重复调用会覆盖反馈和完成时间，调用方约定每个会话最多调用一次
func (r *SessionRepository) Complete(id int, feedback *model.InterviewFeedback, overallScore int) (*model.InterviewSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}

	now := time.Now()
	score := overallScore
	session.Status = model.StatusCompleted
	session.Feedback = feedback
	session.OverallScore = &score
	session.CompletedAt = &now

	return cloneSession(session), nil
}

// Count 当前会话数量，监控用
func (r *SessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func cloneSession(s *model.InterviewSession) *model.InterviewSession {
	c := *s
	c.Questions = append([]string{}, s.Questions...)
	c.Responses = append([]string{}, s.Responses...)
	if s.OverallScore != nil {
		score := *s.OverallScore
		c.OverallScore = &score
	}
	if s.CompletedAt != nil {
		at := *s.CompletedAt
		c.CompletedAt = &at
	}
	return &c
}
