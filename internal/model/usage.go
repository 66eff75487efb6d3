package model

import "time"

// ActionKind 受每日配额限制的动作类型
type ActionKind string

const (
	ActionInterview   ActionKind = "interviews"
	ActionResumeCheck ActionKind = "resume_checks"
	ActionPitchReview ActionKind = "pitch_reviews"
	ActionRoleplay    ActionKind = "roleplay_sessions"
	ActionSoftSkill   ActionKind = "soft_skill_sessions"
)

// AllActions 全部受限动作，顺序固定
var AllActions = []ActionKind{
	ActionInterview,
	ActionResumeCheck,
	ActionPitchReview,
	ActionRoleplay,
	ActionSoftSkill,
}

// UsageSnapshot 某个客户端当日的配额余量
// swagger:model
type UsageSnapshot struct {
	Remaining map[ActionKind]int `json:"remaining"`
	ResetsAt  time.Time          `json:"resetsAt"`
}
