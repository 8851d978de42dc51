package repository

import (
	"fmt"

	"gorm.io/gorm"

	"demo_services/internal/models"
	"demo_services/internal/storage"
)

// PostgreSQL 專用語句
const (
	pgSchemaLockSQL   = "SELECT pg_advisory_xact_lock(hashtext('visits'))"
	pgCreateVisitsSQL = "CREATE TABLE IF NOT EXISTS visits (count bigserial PRIMARY KEY)"
	pgLockVisitsSQL   = "LOCK TABLE visits IN SHARE ROW EXCLUSIVE MODE"
)

type VisitRepository interface {
	EnsureSchema() error
	RecordAndCount() (int64, error)
}

type visitRepository struct {
	db *storage.Database
}

func NewVisitRepository(db *storage.Database) VisitRepository {
	return &visitRepository{db: db}
}

// EnsureSchema 建立 visits 資料表（已存在時不做任何事）
func (r *visitRepository) EnsureSchema() error {
	if r.db.Dialect() == "postgres" {
		return r.ensurePostgresSchema()
	}
	if err := r.db.AutoMigrate(&models.Visit{}); err != nil {
		return fmt.Errorf("repository: ensure visits table: %w", err)
	}
	return nil
}

// ensurePostgresSchema 以 advisory lock 序列化建表；AutoMigrate 先查再建，
// 兩個首次造訪同時進來時第二個 CREATE TABLE 會失敗
func (r *visitRepository) ensurePostgresSchema() error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(pgSchemaLockSQL).Error; err != nil {
			return fmt.Errorf("lock schema: %w", err)
		}
		if err := tx.Exec(pgCreateVisitsSQL).Error; err != nil {
			return fmt.Errorf("create table: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("repository: ensure visits table: %w", err)
	}
	return nil
}

// RecordAndCount 在同一個交易中新增一筆造訪並計算總筆數
func (r *visitRepository) RecordAndCount() (int64, error) {
	var total int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// PostgreSQL 在 READ COMMITTED 下需要鎖表，計數才會對應到自己的那一筆
		if r.db.Dialect() == "postgres" {
			if err := tx.Exec(pgLockVisitsSQL).Error; err != nil {
				return fmt.Errorf("repository: lock visits: %w", err)
			}
		}
		if err := tx.Create(&models.Visit{}).Error; err != nil {
			return fmt.Errorf("repository: insert visit: %w", err)
		}
		if err := tx.Model(&models.Visit{}).Count(&total).Error; err != nil {
			return fmt.Errorf("repository: count visits: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
