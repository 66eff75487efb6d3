package repository

import (
	"sync"
	"time"

	"interview_prep_backend/internal/model"
)

// FeedbackRepository 产品反馈的进程内存储，只追加
type FeedbackRepository struct {
	mu      sync.Mutex
	entries []model.UserFeedback
	nextID  int
}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{nextID: 1}
}

func (r *FeedbackRepository) Create(fb model.UserFeedback) model.UserFeedback {
	r.mu.Lock()
	defer r.mu.Unlock()

	fb.ID = r.nextID
	r.nextID++
	fb.CreatedAt = time.Now()
	r.entries = append(r.entries, fb)
	return fb
}

func (r *FeedbackRepository) List() []model.UserFeedback {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.UserFeedback, len(r.entries))
	copy(out, r.entries)
	return out
}
