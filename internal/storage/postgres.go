package storage

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"demo_services/pkg/config"
)

// Database 包裝單一連線的 gorm.DB
type Database struct {
	*gorm.DB
}

// Opener 每次呼叫都建立一條新的資料庫連線，呼叫端負責 Close
type Opener func(ctx context.Context) (*Database, error)

// NewOpener 依照設定的 driver 回傳對應的 Opener
func NewOpener(cfg config.DBConfig) (Opener, error) {
	switch cfg.Driver {
	case "", "postgres":
		return func(ctx context.Context) (*Database, error) {
			return NewPostgresDB(ctx, cfg)
		}, nil
	case "sqlite":
		return func(ctx context.Context) (*Database, error) {
			return NewSQLiteDB(ctx, cfg.SQLitePath)
		}, nil
	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", cfg.Driver)
	}
}

// PostgresDSN 組出 PostgreSQL 連線字串
func PostgresDSN(cfg config.DBConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, sslMode)
}

func NewPostgresDB(ctx context.Context, cfg config.DBConfig) (*Database, error) {
	return open(ctx, postgres.Open(PostgresDSN(cfg)))
}

// NewSQLiteDB 開啟 SQLite 檔案；寫入交易以 IMMEDIATE 模式開始，避免升級鎖時的衝突
func NewSQLiteDB(ctx context.Context, path string) (*Database, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=10000&_txlock=immediate", path)
	return open(ctx, sqlite.Open(dsn))
}

func open(ctx context.Context, dialector gorm.Dialector) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database handle: %w", err)
	}
	// 每個請求獨占一條連線，不與其他請求共用；閒置上限 1 讓建表、交易沿用同一條，Close 時關閉
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return &Database{DB: db.WithContext(ctx)}, nil
}

func (db *Database) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping 確認連線可用
func (db *Database) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// AutoMigrate 自動遷移資料庫結構
func (db *Database) AutoMigrate(models ...interface{}) error {
	return db.DB.AutoMigrate(models...)
}

// Dialect 回傳目前使用的資料庫方言名稱，例如 postgres 或 sqlite
func (db *Database) Dialect() string {
	return db.DB.Dialector.Name()
}
