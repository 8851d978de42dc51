package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"demo_services/internal/middleware"
	"demo_services/internal/service"
)

// VisitService 是 VisitHandler 需要的服務介面
type VisitService interface {
	RecordVisit(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

// VisitHandler 處理造訪計數頁面
type VisitHandler struct {
	visitService VisitService
	logger       *zap.Logger
}

// NewVisitHandler 創建一個新的 VisitHandler 實例
func NewVisitHandler(visitService VisitService, logger *zap.Logger) *VisitHandler {
	return &VisitHandler{visitService: visitService, logger: logger}
}

// Index 記錄一次造訪並顯示目前的造訪序號
func (h *VisitHandler) Index(c *gin.Context) {
	count, err := h.visitService.RecordVisit(c.Request.Context())
	if err != nil {
		h.logger.Error("record visit failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		// 不對外揭露內部錯誤
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	c.String(http.StatusOK, service.VisitMessage(count))
}

// Health 以資料庫連線狀態回報服務健康度
func (h *VisitHandler) Health(c *gin.Context) {
	if err := h.visitService.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("database ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"db":     "disconnected",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"db":     "connected",
	})
}
