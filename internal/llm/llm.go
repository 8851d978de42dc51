package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"demo_services/pkg/config"
)

// NewClient 建立指向 Gemini OpenAI 相容端點的客戶端
func NewClient(cfg config.LLMConfig, apiKey string) *openai.Client {
	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if clientConfig.BaseURL == "" {
		clientConfig.BaseURL = strings.TrimRight(config.DefaultGeminiBaseURL, "/")
	}

	return openai.NewClientWithConfig(clientConfig)
}

// Gemini 針對單一 prompt 產生文字
type Gemini struct {
	client Client
	model  string
}

func NewGemini(client Client, model string) (*Gemini, error) {
	if client == nil {
		return nil, errors.New("llm: client must not be nil")
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, errors.New("llm: model must not be empty")
	}
	return &Gemini{client: client, model: model}, nil
}

// Generate 以單一 user 訊息送出 prompt，回傳第一個 choice 的文字
// API 錯誤不包裝，呼叫端可原樣顯示上游訊息
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

// ResolveAPIKey 優先使用 cfg.APIKey，否則從 cfg.APIKeyParam 指定的參數讀取
func ResolveAPIKey(ctx context.Context, cfg config.LLMConfig, params ParamGetter) (string, error) {
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		return key, nil
	}
	name := strings.TrimSpace(cfg.APIKeyParam)
	if name == "" {
		return "", errors.New("llm: GEMINI_API_KEY is not set in environment variables")
	}
	if params == nil {
		return "", errors.New("llm: parameter getter must not be nil")
	}
	raw, err := params.GetParameter(ctx, name)
	if err != nil {
		return "", fmt.Errorf("llm: fetch api key: %w", err)
	}
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", fmt.Errorf("llm: parameter %q is empty", name)
	}
	return key, nil
}
