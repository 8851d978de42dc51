package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 是請求 ID 使用的 HTTP 標頭
const RequestIDHeader = "X-Request-Id"

const requestIDKey = "requestID"

// RequestID 沿用客戶端帶入的請求 ID，沒有時產生新的 UUID，並寫回回應標頭
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID 取得目前請求的 ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
