package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/util"
	"interview_prep_backend/pkg/logger"
	"interview_prep_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// SoftSkillService 软技能场景练习
type SoftSkillService struct {
	usage *UsageService
	ai    AIClient
}

func NewSoftSkillService(usage *UsageService, ai AIClient) *SoftSkillService {
	return &SoftSkillService{usage: usage, ai: ai}
}

// softSkillScenarios 静态场景池
var softSkillScenarios = []string{
	"How would you handle a situation where a team member consistently misses deadlines and it's affecting the project timeline?",
	"Describe how you would approach giving constructive feedback to a colleague who seems resistant to change.",
	"You notice a teammate is struggling with their workload but hasn't asked for help. How would you handle this situation?",
	"How would you mediate a conflict between two team members who have different approaches to solving a problem?",
	"Describe how you would motivate a team during a particularly challenging project with tight deadlines.",
	"How would you handle a situation where you need to deliver disappointing news to stakeholders?",
	"You're working with a remote team member who seems disengaged during meetings. How would you address this?",
	"How would you approach building trust with a new team when joining a project mid-way?",
	"Describe how you would handle receiving criticism about your work from a supervisor.",
	"How would you encourage innovation and creative thinking within your team while meeting deadlines?",
}

var demoSoftSkillFeedback = model.SoftSkillFeedback{
	EmpathyScore:   85,
	StructureScore: 78,
	RelevanceScore: 82,
	ImprovementSuggestions: []string{
		"Consider acknowledging the emotional impact on all parties involved",
		"Add more specific steps or examples to demonstrate your approach",
		"Include how you would follow up to ensure the solution was effective",
	},
	StrengthsIdentified: []string{
		"Shows clear understanding of the situation",
		"Demonstrates proactive communication approach",
		"Displays good problem-solving mindset",
	},
	OverallFeedback: "Your response shows strong soft skills fundamentals with good empathy and practical thinking. You demonstrate understanding of interpersonal dynamics and show a collaborative approach to problem-solving. To enhance your response, consider adding more specific examples and follow-up strategies.",
}

// RandomQuestions 随机抽取 3 个场景，取题不消耗配额
func (s *SoftSkillService) RandomQuestions() []string {
	shuffled := append([]string{}, softSkillScenarios...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:3]
}

func (s *SoftSkillService) Analyze(ctx context.Context, clientID, question, response string) (*model.SoftSkillFeedback, error) {
	if ok, msg := s.usage.CheckAllowed(clientID, model.ActionSoftSkill); !ok {
		monitoring.QuotaRejections.WithLabelValues(string(model.ActionSoftSkill)).Inc()
		return nil, &util.QuotaExceededError{Action: model.ActionSoftSkill, Message: msg}
	}

	feedback, err := s.analyze(ctx, question, response)
	if err != nil {
		if errors.Is(err, util.ErrUpstreamCapacity) {
			logger.Log.Warn("generator at capacity, serving demo soft-skill feedback")
			monitoring.FallbackServed.WithLabelValues("analyze_soft_skill").Inc()
			demo := demoSoftSkillFeedback
			feedback = &demo
		} else {
			logger.Log.Error("soft-skill analysis failed",
				zap.String("action", string(model.ActionSoftSkill)), zap.Error(err))
			return nil, err
		}
	}

	s.usage.Record(clientID, model.ActionSoftSkill)
	return feedback, nil
}

func (s *SoftSkillService) analyze(ctx context.Context, question, response string) (*model.SoftSkillFeedback, error) {
	prompt := fmt.Sprintf(`Analyze this soft skills response to a scenario-based question:

QUESTION: "%s"

RESPONSE: "%s"

Evaluate the response on these criteria and provide analysis in this exact JSON format:
{
  "empathyScore": number (0-100, how well the response shows understanding and empathy for others),
  "structureScore": number (0-100, how well organized and logical the response is),
  "relevanceScore": number (0-100, how relevant and appropriate the response is to the scenario),
  "improvementSuggestions": ["specific suggestion 1", "specific suggestion 2", "specific suggestion 3"] (actionable improvements for better soft skills demonstration),
  "strengthsIdentified": ["strength 1", "strength 2", "strength 3"] (positive aspects and strengths shown in the response),
  "overallFeedback": "comprehensive summary focusing on soft skills development and professional growth"
}

Focus on empathy, communication skills, emotional intelligence, and practical application.`, question, response)

	content, err := s.ai.Complete(ctx, ChatRequest{
		Operation:   "analyze_soft_skill",
		System:      "You are an expert in soft skills development and workplace communication. Provide constructive feedback that helps candidates improve their emotional intelligence, empathy, and interpersonal skills.",
		Prompt:      prompt,
		Temperature: 0.3,
		MaxTokens:   600,
	})
	if err != nil {
		return nil, err
	}

	var feedback model.SoftSkillFeedback
	if err := json.Unmarshal([]byte(content), &feedback); err != nil {
		return nil, fmt.Errorf("invalid soft-skill payload from AI: %w", err)
	}
	if len(feedback.ImprovementSuggestions) == 0 {
		return nil, errors.New("invalid soft skills analysis structure received from AI")
	}

	feedback.EmpathyScore = clampScore(feedback.EmpathyScore)
	feedback.StructureScore = clampScore(feedback.StructureScore)
	feedback.RelevanceScore = clampScore(feedback.RelevanceScore)
	return &feedback, nil
}
