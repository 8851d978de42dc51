package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"demo_services/internal/middleware"
	"demo_services/internal/service"
)

// ChatService 是 ChatHandler 需要的服務介面
type ChatService interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// ChatHandler 處理 prompt 轉發相關的請求
type ChatHandler struct {
	chatService ChatService
	logger      *zap.Logger
}

// NewChatHandler 創建一個新的 ChatHandler 實例
func NewChatHandler(chatService ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{chatService: chatService, logger: logger}
}

// ChatInput 定義 /chat 的查詢參數
type ChatInput struct {
	Prompt string `form:"prompt"`
}

// ChatResponse 定義成功時的回應
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse 定義錯誤時的回應
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Root 回報服務狀態，供負載平衡器健康檢查使用
func (h *ChatHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Gemini API Wrapper is running",
	})
}

// Chat 將 prompt 轉發給 Gemini 並回傳文字
func (h *ChatHandler) Chat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	text, err := h.chatService.Chat(c.Request.Context(), input.Prompt)
	if err != nil {
		status := statusForError(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("chat request failed",
				zap.String("request_id", middleware.GetRequestID(c)),
				zap.String("kind", string(service.KindOf(err))),
				zap.Error(err),
			)
		}
		c.JSON(status, ErrorResponse{Detail: detailForError(err)})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Response: text})
}
