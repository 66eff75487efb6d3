package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/util"
	"interview_prep_backend/pkg/logger"
	"interview_prep_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// PitchService 电梯演讲点评
type PitchService struct {
	usage *UsageService
	ai    AIClient
}

func NewPitchService(usage *UsageService, ai AIClient) *PitchService {
	return &PitchService{usage: usage, ai: ai}
}

var demoPitchFeedback = model.PitchFeedback{
	ClarityScore:    78,
	ConfidenceScore: 82,
	FillerWords:     2,
	StructureScore:  75,
	ToneScore:       80,
	ImprovementSuggestions: []string{
		"Add specific metrics or achievements to strengthen credibility",
		"Practice smoother transitions between key points",
		"Include a clear call-to-action at the end",
		"Reduce hesitation words like 'um' and 'uh'",
		"Make your unique value proposition more prominent",
	},
	OverallFeedback: "Your elevator pitch demonstrates good fundamentals with a clear structure and confident tone. The content is relevant and shows your passion for the field. To enhance impact, focus on quantifying your achievements and practicing smoother delivery. Your enthusiasm comes through well, which is a significant strength.",
	EnhancedVersion: "Hi, I'm a software engineering student with a passion for creating user-centered applications that solve real problems. I recently developed a task management web app that helped 200+ beta users increase their productivity by 40% through smart deadline tracking and progress visualization. With strong skills in React, Node.js, and user experience design, I'm seeking internship opportunities where I can contribute to meaningful projects while learning from experienced developers. I'd love to discuss how my technical skills and fresh perspective could benefit your team.",
}

func (s *PitchService) Analyze(ctx context.Context, clientID, pitchText string) (*model.PitchFeedback, error) {
	if ok, msg := s.usage.CheckAllowed(clientID, model.ActionPitchReview); !ok {
		monitoring.QuotaRejections.WithLabelValues(string(model.ActionPitchReview)).Inc()
		return nil, &util.QuotaExceededError{Action: model.ActionPitchReview, Message: msg}
	}

	feedback, err := s.analyze(ctx, pitchText)
	if err != nil {
		if errors.Is(err, util.ErrUpstreamCapacity) {
			logger.Log.Warn("generator at capacity, serving demo pitch feedback")
			monitoring.FallbackServed.WithLabelValues("analyze_pitch").Inc()
			demo := demoPitchFeedback
			feedback = &demo
		} else {
			logger.Log.Error("pitch analysis failed",
				zap.String("action", string(model.ActionPitchReview)), zap.Error(err))
			return nil, err
		}
	}

	s.usage.Record(clientID, model.ActionPitchReview)
	return feedback, nil
}

func (s *PitchService) analyze(ctx context.Context, pitchText string) (*model.PitchFeedback, error) {
	prompt := fmt.Sprintf(`Analyze this elevator pitch and provide detailed feedback:

PITCH:
"%s"

Evaluate the pitch on these criteria and provide analysis in this exact JSON format:
{
  "clarityScore": number (0-100, how clear and understandable the message is),
  "confidenceScore": number (0-100, how confident and assertive the tone is),
  "fillerWords": number (count of filler words like um, uh, like, you know),
  "structureScore": number (0-100, how well organized and logical the flow is),
  "toneScore": number (0-100, how professional and engaging the tone is),
  "improvementSuggestions": ["specific suggestion 1", "specific suggestion 2", "specific suggestion 3", "specific suggestion 4", "specific suggestion 5"] (actionable improvements for better pitch delivery),
  "overallFeedback": "comprehensive summary of strengths and areas for improvement",
  "enhancedVersion": "rewritten version of the pitch incorporating improvements while maintaining the original intent and personality"
}

Focus on practical advice for delivery, content structure, and professional impact.`, pitchText)

	content, err := s.ai.Complete(ctx, ChatRequest{
		Operation:   "analyze_pitch",
		System:      "You are an expert communication coach specializing in elevator pitches and professional presentations. Provide detailed, actionable feedback to help candidates improve their pitch delivery and impact.",
		Prompt:      prompt,
		Temperature: 0.3,
		MaxTokens:   800,
	})
	if err != nil {
		return nil, err
	}

	var feedback model.PitchFeedback
	if err := json.Unmarshal([]byte(content), &feedback); err != nil {
		return nil, fmt.Errorf("invalid pitch payload from AI: %w", err)
	}
	if len(feedback.ImprovementSuggestions) == 0 {
		return nil, errors.New("invalid pitch analysis structure received from AI")
	}

	feedback.ClarityScore = clampScore(feedback.ClarityScore)
	feedback.ConfidenceScore = clampScore(feedback.ConfidenceScore)
	feedback.StructureScore = clampScore(feedback.StructureScore)
	feedback.ToneScore = clampScore(feedback.ToneScore)
	if feedback.FillerWords < 0 {
		feedback.FillerWords = 0
	}
	return &feedback, nil
}
