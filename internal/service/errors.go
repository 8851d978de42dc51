package service

import (
	"errors"
	"fmt"
)

// ErrorKind 區分錯誤類型，由 HTTP 層轉換成狀態碼
type ErrorKind string

const (
	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"
	KindUpstream        ErrorKind = "UPSTREAM_ERROR"
	KindInternal        ErrorKind = "INTERNAL_ERROR"
)

// Error 是服務層回傳的錯誤；Message 可直接回給客戶端
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("service: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("service: %s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf 取出錯誤類型；非服務層錯誤一律視為 KindInternal
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}
