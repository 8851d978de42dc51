package llm

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// Client 是 Gemini 用到的 openai.Client 子集，方便在測試中替換
type Client interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ParamGetter 依名稱讀取機密參數
type ParamGetter interface {
	GetParameter(ctx context.Context, name string) (string, error)
}
