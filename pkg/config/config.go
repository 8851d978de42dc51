package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Gemini 的 OpenAI 相容端點與預設模型
const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultGeminiModel   = "gemini-2.5-flash"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	LLM    LLMConfig
	Log    LogConfig
}

type ServerConfig struct {
	Address string
}

// DBConfig 描述計數服務的資料庫連線
type DBConfig struct {
	Driver     string
	Host       string
	User       string
	Password   string
	Name       string
	Port       int
	SSLMode    string `mapstructure:"ssl_mode"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// LLMConfig 描述 Gemini API 的連線設定
// APIKeyParam 為 SSM 參數名稱，僅在 APIKey 為空時使用
type LLMConfig struct {
	APIKey      string `mapstructure:"api_key"`
	APIKeyParam string `mapstructure:"api_key_param"`
	BaseURL     string `mapstructure:"base_url"`
	Model       string
}

type LogConfig struct {
	Level string
}

// 設定鍵與環境變數的對應
var envBindings = map[string]string{
	"server.address":    "SERVER_ADDRESS",
	"db.driver":         "DB_DRIVER",
	"db.host":           "POSTGRES_HOST",
	"db.user":           "POSTGRES_USER",
	"db.password":       "POSTGRES_PASSWORD",
	"db.name":           "POSTGRES_DB",
	"db.port":           "POSTGRES_PORT",
	"db.ssl_mode":       "POSTGRES_SSLMODE",
	"db.sqlite_path":    "SQLITE_PATH",
	"llm.api_key":       "GEMINI_API_KEY",
	"llm.api_key_param": "GEMINI_API_KEY_PARAM",
	"llm.base_url":      "GEMINI_BASE_URL",
	"llm.model":         "GEMINI_MODEL",
	"log.level":         "LOG_LEVEL",
}

// LoadDotEnv 載入 .env 檔案（本地開發用），檔案不存在時不視為錯誤
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config: load .env: %w", err)
	}
	return nil
}

// Load 讀取設定：預設值 → 設定檔（CONFIG_PATH 或 ./config.yaml）→ 環境變數
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", env, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	config.DB.Driver = strings.ToLower(strings.TrimSpace(config.DB.Driver))

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8000")
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.host", "db")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.ssl_mode", "disable")
	v.SetDefault("db.sqlite_path", "visits.db")
	v.SetDefault("llm.base_url", DefaultGeminiBaseURL)
	v.SetDefault("llm.model", DefaultGeminiModel)
	v.SetDefault("log.level", "info")
}

// ValidateRelay 確認轉發服務啟動所需的設定
func (c *Config) ValidateRelay() error {
	if strings.TrimSpace(c.LLM.APIKey) == "" && strings.TrimSpace(c.LLM.APIKeyParam) == "" {
		return errors.New("config: GEMINI_API_KEY is not set in environment variables")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("config: GEMINI_MODEL must not be empty")
	}
	return nil
}

// ValidateCounter 確認計數服務啟動所需的設定
func (c *Config) ValidateCounter() error {
	switch c.DB.Driver {
	case "sqlite":
		if strings.TrimSpace(c.DB.SQLitePath) == "" {
			return errors.New("config: SQLITE_PATH must not be empty")
		}
		return nil
	case "postgres":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DB.Driver)
	}

	var missing []string
	if c.DB.Name == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if c.DB.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if c.DB.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if c.DB.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
