package model

import "time"

// SessionStatus 面试会话状态
type SessionStatus string

const (
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	// StatusAbandoned 预留状态：当前没有任何操作会写入该值，
	// 会话过期逻辑落地后才会使用
	StatusAbandoned SessionStatus = "abandoned"
)

// InterviewSession 一次模拟面试会话
// 全部状态仅存在于进程内存中，进程重启即丢失
// swagger:model
type InterviewSession struct {
	ID                   int                `json:"id"`
	Role                 Role               `json:"role"`
	Status               SessionStatus      `json:"status"`
	CurrentQuestionIndex int                `json:"currentQuestionIndex"`
	Questions            []string           `json:"questions"`
	Responses            []string           `json:"responses"`
	Feedback             *InterviewFeedback `json:"feedback"`
	OverallScore         *int               `json:"overallScore"`
	CreatedAt            time.Time          `json:"createdAt"`
	CompletedAt          *time.Time         `json:"completedAt"`
}

// UserFeedback 用户对产品本身的反馈（非面试反馈），只追加不修改
// swagger:model
type UserFeedback struct {
	ID          int       `json:"id"`
	SessionID   *int      `json:"sessionId"`
	Role        *Role     `json:"role"`
	Rating      int       `json:"rating"`
	Experience  string    `json:"experience,omitempty"`
	Suggestions string    `json:"suggestions,omitempty"`
	FollowUp    string    `json:"followUp,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
