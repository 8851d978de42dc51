package handlers

import (
	"errors"
	"net/http"

	"demo_services/internal/service"
)

// statusForError 將服務層錯誤類型轉成 HTTP 狀態碼
func statusForError(err error) int {
	switch service.KindOf(err) {
	case service.KindInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// detailForError 取出可回給客戶端的錯誤訊息
func detailForError(err error) string {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return http.StatusText(http.StatusInternalServerError)
}
