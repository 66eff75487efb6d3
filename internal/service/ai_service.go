package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/util"
	"interview_prep_backend/pkg/monitoring"
)

// AIClient 反馈生成器的调用入口，各业务服务依赖此接口，测试时替换
type AIClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// ChatRequest 一次补全请求
// Operation 仅用于指标和日志归类
type ChatRequest struct {
	Operation   string
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// AIService OpenAI 兼容接口的最小客户端
// 只负责传输和错误分类，提示词与结果解析在各业务服务中
type AIService struct {
	cfg    config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout()},
	}
}

type aiChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []aiChatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message aiChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// Complete 发起一次 JSON 模式的补全
// 上游容量类故障（429/503、insufficient_quota、超时）统一包装为
// util.ErrUpstreamCapacity，调用方据此决定是否降级为演示内容
func (s *AIService) Complete(ctx context.Context, req ChatRequest) (string, error) {
	body := chatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []aiChatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	body.ResponseFormat.Type = "json_object"

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			monitoring.GeneratorRequests.WithLabelValues(req.Operation, "capacity").Inc()
			return "", fmt.Errorf("%w: %v", util.ErrUpstreamCapacity, err)
		}
		monitoring.GeneratorRequests.WithLabelValues(req.Operation, "error").Inc()
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		if isCapacityStatus(resp.StatusCode, respBody) {
			monitoring.GeneratorRequests.WithLabelValues(req.Operation, "capacity").Inc()
			return "", fmt.Errorf("%w: AI API status %d", util.ErrUpstreamCapacity, resp.StatusCode)
		}
		monitoring.GeneratorRequests.WithLabelValues(req.Operation, "error").Inc()
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		monitoring.GeneratorRequests.WithLabelValues(req.Operation, "error").Inc()
		return "", err
	}

	if result.Error != nil {
		monitoring.GeneratorRequests.WithLabelValues(req.Operation, "error").Inc()
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		monitoring.GeneratorRequests.WithLabelValues(req.Operation, "error").Inc()
		return "", errors.New("AI returned no choices")
	}

	monitoring.GeneratorRequests.WithLabelValues(req.Operation, "ok").Inc()
	return result.Choices[0].Message.Content, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isCapacityStatus(status int, body []byte) bool {
	if status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable {
		return true
	}
	return strings.Contains(string(body), "insufficient_quota")
}
