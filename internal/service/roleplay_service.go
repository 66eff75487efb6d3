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

// RoleplayService HR 情景对练：随机出场景，回答点评受配额约束
type RoleplayService struct {
	usage *UsageService
	ai    AIClient
}

func NewRoleplayService(usage *UsageService, ai AIClient) *RoleplayService {
	return &RoleplayService{usage: usage, ai: ai}
}

// hrScenarios 静态场景池，每个主题两问
var hrScenarios = []model.RoleplayScenario{
	{
		Topic: "Handling Workplace Pressure",
		Questions: []string{
			"Tell me about a time when you had to handle multiple competing priorities with tight deadlines. How did you manage the pressure?",
			"How would you communicate with your team and supervisor when you realize you might not meet a critical deadline?",
		},
	},
	{
		Topic: "Team Leadership and Collaboration",
		Questions: []string{
			"Describe a situation where you had to lead a team through a challenging project. What was your approach?",
			"How would you handle a situation where team members have conflicting opinions about the project direction?",
		},
	},
	{
		Topic: "Problem-Solving and Innovation",
		Questions: []string{
			"Tell me about a time when you identified a problem that others hadn't noticed. How did you address it?",
			"How would you approach implementing a new process or technology that your team is resistant to adopting?",
		},
	},
	{
		Topic: "Communication and Conflict Resolution",
		Questions: []string{
			"Describe a time when you had to deliver difficult news to a client or stakeholder. How did you handle it?",
			"How would you resolve a situation where there's miscommunication between departments affecting your project?",
		},
	},
	{
		Topic: "Adaptability and Change Management",
		Questions: []string{
			"Tell me about a time when project requirements changed significantly midway through. How did you adapt?",
			"How would you help your team embrace a major organizational change that affects their daily work?",
		},
	},
	{
		Topic: "Professional Development and Growth",
		Questions: []string{
			"Describe a time when you received constructive criticism. How did you use it to improve?",
			"How would you approach mentoring a junior colleague who is struggling with their responsibilities?",
		},
	},
}

var demoRoleplayFeedback = model.RoleplayFeedback{
	PersuasivenessScore: 80,
	StructureScore:      75,
	CommunicationScore:  85,
	ImprovementSuggestions: []string{
		"Use the STAR method (Situation, Task, Action, Result) for more structured responses",
		"Include specific metrics or outcomes to strengthen credibility",
		"Practice smoother transitions between different parts of your answer",
	},
	StrengthsIdentified: []string{
		"Clear and confident communication style",
		"Good understanding of professional workplace dynamics",
		"Shows accountability and problem-solving mindset",
	},
	OverallFeedback: "Your response demonstrates solid professional communication skills and good awareness of workplace dynamics. You show confidence in your approach and provide practical solutions. To enhance your responses, focus on using structured frameworks like STAR and include more specific examples with measurable outcomes.",
}

// RandomScenario 随机抽取一个对练场景，取题不消耗配额
func (s *RoleplayService) RandomScenario() model.RoleplayScenario {
	scenario := hrScenarios[rand.Intn(len(hrScenarios))]
	return model.RoleplayScenario{
		Topic:     scenario.Topic,
		Questions: append([]string{}, scenario.Questions...),
	}
}

func (s *RoleplayService) Analyze(ctx context.Context, clientID, topic, question, response string) (*model.RoleplayFeedback, error) {
	if ok, msg := s.usage.CheckAllowed(clientID, model.ActionRoleplay); !ok {
		monitoring.QuotaRejections.WithLabelValues(string(model.ActionRoleplay)).Inc()
		return nil, &util.QuotaExceededError{Action: model.ActionRoleplay, Message: msg}
	}

	feedback, err := s.analyze(ctx, topic, question, response)
	if err != nil {
		if errors.Is(err, util.ErrUpstreamCapacity) {
			logger.Log.Warn("generator at capacity, serving demo roleplay feedback")
			monitoring.FallbackServed.WithLabelValues("analyze_roleplay").Inc()
			demo := demoRoleplayFeedback
			feedback = &demo
		} else {
			logger.Log.Error("roleplay analysis failed",
				zap.String("action", string(model.ActionRoleplay)), zap.Error(err))
			return nil, err
		}
	}

	s.usage.Record(clientID, model.ActionRoleplay)
	return feedback, nil
}

func (s *RoleplayService) analyze(ctx context.Context, topic, question, response string) (*model.RoleplayFeedback, error) {
	prompt := fmt.Sprintf(`Analyze this HR roleplay response in the context of the given topic:

TOPIC: "%s"
QUESTION: "%s"
RESPONSE: "%s"

Evaluate the response on these criteria and provide analysis in this exact JSON format:
{
  "persuasivenessScore": number (0-100, how convincing and compelling the response is),
  "structureScore": number (0-100, how well organized and logical the response is),
  "communicationScore": number (0-100, how clear, professional, and effective the communication is),
  "improvementSuggestions": ["specific suggestion 1", "specific suggestion 2", "specific suggestion 3"] (actionable improvements for better HR interview performance),
  "strengthsIdentified": ["strength 1", "strength 2", "strength 3"] (positive aspects and professional strengths demonstrated),
  "overallFeedback": "comprehensive summary focusing on HR interview skills and professional presentation"
}

Focus on professional communication, leadership potential, and interview readiness.`, topic, question, response)

	content, err := s.ai.Complete(ctx, ChatRequest{
		Operation:   "analyze_roleplay",
		System:      "You are an expert HR interviewer and professional development coach. Provide detailed feedback that helps candidates improve their interview performance, communication skills, and professional presentation.",
		Prompt:      prompt,
		Temperature: 0.3,
		MaxTokens:   600,
	})
	if err != nil {
		return nil, err
	}

	var feedback model.RoleplayFeedback
	if err := json.Unmarshal([]byte(content), &feedback); err != nil {
		return nil, fmt.Errorf("invalid roleplay payload from AI: %w", err)
	}
	if len(feedback.ImprovementSuggestions) == 0 {
		return nil, errors.New("invalid roleplay analysis structure received from AI")
	}

	feedback.PersuasivenessScore = clampScore(feedback.PersuasivenessScore)
	feedback.StructureScore = clampScore(feedback.StructureScore)
	feedback.CommunicationScore = clampScore(feedback.CommunicationScore)
	return &feedback, nil
}
