package service

import (
	"errors"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/util"
)

// FeedbackService 产品反馈收集，只追加
type FeedbackService struct {
	repo *repository.FeedbackRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

var errInvalidRating = errors.New("rating must be between 1 and 5")

func (s *FeedbackService) Submit(fb model.UserFeedback) (model.UserFeedback, error) {
	if fb.Rating < 1 || fb.Rating > 5 {
		return model.UserFeedback{}, errInvalidRating
	}
	if fb.Role != nil && !model.ValidRole(*fb.Role) {
		return model.UserFeedback{}, util.ErrInvalidRole
	}
	return s.repo.Create(fb), nil
}

func (s *FeedbackService) List() []model.UserFeedback {
	return s.repo.List()
}
