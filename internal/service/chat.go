package service

import (
	"context"
	"errors"

	"demo_services/internal/metrics"
)

// 空白 prompt 時回給客戶端的訊息
const promptRequiredMessage = "Prompt is required"

// Generator 將 prompt 交給外部生成 API 並回傳文字
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatService 負責把 prompt 轉發給 Gemini
type ChatService struct {
	generator Generator
}

func NewChatService(generator Generator) (*ChatService, error) {
	if generator == nil {
		return nil, errors.New("service: generator must not be nil")
	}
	return &ChatService{generator: generator}, nil
}

// Chat 同步呼叫外部 API；不重試，上游錯誤訊息原樣放入 Error.Message
func (s *ChatService) Chat(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", newError(KindInvalidArgument, promptRequiredMessage, nil)
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		metrics.RelayUpstreamErrors.Inc()
		return "", newError(KindUpstream, err.Error(), err)
	}
	return text, nil
}
