package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"demo_services/internal/api/handlers"
	"demo_services/internal/middleware"
)

// newEngine 建立帶有共用中間件的 gin 路由器
func newEngine(service string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger, "/healthz", "/metrics"))
	// Metrics 放在 Recovery 外層，panic 轉成的 500 才會被計入
	r.Use(middleware.Metrics(service))
	r.Use(middleware.Recovery(logger))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// NewRelayRouter 組裝 Gemini 轉發服務的路由
func NewRelayRouter(chatService handlers.ChatService, logger *zap.Logger) *gin.Engine {
	r := newEngine("relay", logger)
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
	}))
	SetupRelayRoutes(r, handlers.NewChatHandler(chatService, logger))
	return r
}

// NewCounterRouter 組裝造訪計數服務的路由
func NewCounterRouter(visitService handlers.VisitService, logger *zap.Logger) *gin.Engine {
	r := newEngine("counter", logger)
	SetupCounterRoutes(r, handlers.NewVisitHandler(visitService, logger))
	return r
}

func SetupRelayRoutes(r *gin.Engine, chatHandler *handlers.ChatHandler) {
	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Detail: "Not Found"})
	})

	r.GET("/", chatHandler.Root)
	r.GET("/chat", chatHandler.Chat)

	// 基本的健康檢查
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}

func SetupCounterRoutes(r *gin.Engine, visitHandler *handlers.VisitHandler) {
	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})

	r.GET("/", visitHandler.Index)
	r.GET("/healthz", visitHandler.Health)
}
