package model

// InterviewFeedback 整场面试的结构化反馈
// swagger:model
type InterviewFeedback struct {
	OverallScore     int                `json:"overallScore"`
	Grade            string             `json:"grade"`
	Communication    float64            `json:"communication"`
	Strengths        []FeedbackPoint    `json:"strengths"`
	Improvements     []ImprovementPoint `json:"improvements"`
	QuestionAnalysis []QuestionAnalysis `json:"questionAnalysis"`
	NextSteps        NextSteps          `json:"nextSteps"`
}

type FeedbackPoint struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ImprovementPoint struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tip         string `json:"tip"`
}

type QuestionAnalysis struct {
	QuestionIndex int      `json:"questionIndex"`
	Question      string   `json:"question"`
	Score         int      `json:"score"`
	WhatWorked    []string `json:"whatWorked"`
	CouldImprove  []string `json:"couldImprove"`
}

type NextSteps struct {
	PracticeAreas []string `json:"practiceAreas"`
	Resources     []string `json:"resources"`
}

// ResumeAnalysis 简历诊断结果
// swagger:model
type ResumeAnalysis struct {
	MatchScore             int      `json:"matchScore"`
	MissingKeywords        []string `json:"missingKeywords"`
	ImprovementSuggestions []string `json:"improvementSuggestions"`
	ImprovedBulletPoints   []string `json:"improvedBulletPoints"`
	OverallFeedback        string   `json:"overallFeedback"`
}

// PitchFeedback 电梯演讲点评结果
// swagger:model
type PitchFeedback struct {
	ClarityScore           int      `json:"clarityScore"`
	ConfidenceScore        int      `json:"confidenceScore"`
	FillerWords            int      `json:"fillerWords"`
	StructureScore         int      `json:"structureScore"`
	ToneScore              int      `json:"toneScore"`
	ImprovementSuggestions []string `json:"improvementSuggestions"`
	OverallFeedback        string   `json:"overallFeedback"`
	EnhancedVersion        string   `json:"enhancedVersion"`
}

// RoleplayFeedback HR 情景对练点评结果
// swagger:model
type RoleplayFeedback struct {
	PersuasivenessScore    int      `json:"persuasivenessScore"`
	StructureScore         int      `json:"structureScore"`
	CommunicationScore     int      `json:"communicationScore"`
	ImprovementSuggestions []string `json:"improvementSuggestions"`
	StrengthsIdentified    []string `json:"strengthsIdentified"`
	OverallFeedback        string   `json:"overallFeedback"`
}

// SoftSkillFeedback 软技能场景回答点评结果
// swagger:model
type SoftSkillFeedback struct {
	EmpathyScore           int      `json:"empathyScore"`
	StructureScore         int      `json:"structureScore"`
	RelevanceScore         int      `json:"relevanceScore"`
	ImprovementSuggestions []string `json:"improvementSuggestions"`
	StrengthsIdentified    []string `json:"strengthsIdentified"`
	OverallFeedback        string   `json:"overallFeedback"`
}

// RoleplayScenario 随机抽取的 HR 对练场景
// swagger:model
type RoleplayScenario struct {
	Topic     string   `json:"topic"`
	Questions []string `json:"questions"`
}
