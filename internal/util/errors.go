package util

import (
	"errors"
	"fmt"

	"interview_prep_backend/internal/model"
)

var (
	ErrSessionNotFound  = errors.New("interview session not found")
	ErrInvalidRole      = errors.New("invalid role specified")
	ErrInvalidIndex     = errors.New("question index out of range")
	ErrUpstreamCapacity = errors.New("feedback generator at capacity")
)

// QuotaExceededError 配额耗尽，携带面向用户的提示文案
// 属于业务正常分支而非异常
type QuotaExceededError struct {
	Action  model.ActionKind
	Message string
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("daily quota exceeded for %s", e.Action)
}

// AsQuotaExceeded 判断 err 是否为配额耗尽错误
func AsQuotaExceeded(err error) (*QuotaExceededError, bool) {
	var qe *QuotaExceededError
	if errors.As(err, &qe) {
		return qe, true
	}
	return nil, false
}
