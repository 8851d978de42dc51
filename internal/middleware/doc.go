// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 這個包包含請求 ID、結構化請求日誌、panic 復原與 Prometheus 指標等
// 兩個服務共用的中間件。
package middleware
