package api

import (
	"path/filepath"
	"testing"

	"demo_services/pkg/config"
)

func storageConfig(t *testing.T) config.DBConfig {
	t.Helper()
	return config.DBConfig{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "visits.db")}
}
