// Package api 處理 HTTP 請求路由和處理。
//
// 這個包為轉發服務與計數服務分別組裝 gin 路由器，
// 將 HTTP 請求轉換為適當的服務調用，並將結果轉換回 HTTP 響應。
package api
