package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/nexushq/nexus-service/internal/config"
	"github.com/nexushq/nexus-service/internal/logger"
)

// ErrUnavailable AI服务未配置（缺少API密钥），调用方按调用失败处理
var ErrUnavailable = errors.New("AI服务未配置")

// 外部调用失败时的固定降级文案
const (
	FallbackTaskUnavailable = "AI service unavailable. Please check API Key."
	FallbackTaskFailed      = "Failed to generate description."
	FallbackTaskEmpty       = "No description generated."
	FallbackChatUnavailable = "I'm offline right now (Check API Key)."
	FallbackChatFailed      = "Sorry, I'm having trouble connecting to the server."
	FallbackChatEmpty       = "I didn't catch that."
)

// Client 文本生成服务客户端
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func Init(cfg config.AIConfig) *Client {
	if cfg.APIKey == "" {
		logger.Warn("AI API key not configured, generation will degrade to fallback replies")
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client:  &http.Client{},
	}
}

// GenerateContent 调用生成接口，返回生成文本
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrUnavailable
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generate request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateTaskDescription 为任务标题生成专业描述（含验收标准）。
// 外部调用失败时返回固定降级文案，从不向上传播错误。
func (c *Client) GenerateTaskDescription(ctx context.Context, taskTitle string) string {
	if c.apiKey == "" {
		return FallbackTaskUnavailable
	}

	prompt := fmt.Sprintf(`Write a concise, professional task description for a software engineering task titled: %q. Include acceptance criteria.`, taskTitle)

	text, err := c.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Error("Gemini API error: %v", err)
		return FallbackTaskFailed
	}
	if text == "" {
		return FallbackTaskEmpty
	}
	return text
}

// ChatReply 为聊天消息生成项目管理助理风格的简短回复。
// 外部调用失败时返回固定降级文案，从不向上传播错误。
func (c *Client) ChatReply(ctx context.Context, message string) string {
	if c.apiKey == "" {
		return FallbackChatUnavailable
	}

	prompt := fmt.Sprintf(`You are a helpful project management assistant named NexusAI. User says: %q. Keep it brief and helpful related to project management, coding, or team productivity.`, message)

	text, err := c.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Error("Gemini chat error: %v", err)
		return FallbackChatFailed
	}
	if text == "" {
		return FallbackChatEmpty
	}
	return text
}
