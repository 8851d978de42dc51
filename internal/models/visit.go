package models

// Visit 表示一次頁面造訪，Count 由資料庫自動遞增產生
type Visit struct {
	Count uint `gorm:"column:count;primaryKey;autoIncrement" json:"count"`
}

// TableName 指定資料表名稱
func (Visit) TableName() string {
	return "visits"
}
