package config

import "time"

// GamerFlow definition gamerflow YAML structure
type GamerFlow struct {
	Port     string `mapstructure:"port"`
	IP       string `mapstructure:"ip"`
	GRPCPort string `mapstructure:"grpc_port"`
	// PprofAddr 空白時不啟動 pprof (production 一律不啟動)
	PprofAddr string `mapstructure:"pprof_addr"`

	// CatalogSource "static" 使用內建假資料, "postgres" 從 pg 讀取 (空表時寫入假資料)
	CatalogSource string `mapstructure:"catalog_source"`
	// Storage "redis" 或 "memory"
	Storage string `mapstructure:"storage"`

	SessionTTL   time.Duration `mapstructure:"session_ttl"`
	SaveDebounce time.Duration `mapstructure:"save_debounce"`
	PresignTTL   time.Duration `mapstructure:"presign_ttl"`
	// MaxCachedProfiles 每個 use case 記憶體內保留的 profile 數上限
	MaxCachedProfiles int `mapstructure:"max_cached_profiles"`

	PostgreSQL DatabaseConfig `mapstructure:"pg"`
	MongoDB    DatabaseConfig `mapstructure:"mongo"`
	Redis      RedisConfig    `mapstructure:"redis"`
	MinIO      MinIOConfig    `mapstructure:"minio"`
	RabbitMQ   RabbitMQConfig `mapstructure:"rabbitmq"`
	Gemini     GeminiConfig   `mapstructure:"gemini"`
}

// RedisConfig definition redis setting
type RedisConfig struct {
	RedisDB int `mapstructure:"redis_db"`
	// Addr 沒有 sentinel 設定時使用的單一節點
	Addr string `mapstructure:"addr"`
}

// DatabaseConfig definition db setting
type DatabaseConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	Database      string `mapstructure:"database"`
	RetryInterval int    `mapstructure:"retry_interval"`
	RetryCount    int    `mapstructure:"retry_count"`
}

// MinIOConfig definition minio setting
type MinIOConfig struct {
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	User          string        `mapstructure:"user"`
	Password      string        `mapstructure:"password"`
	BucketName    string        `mapstructure:"bucket_name"`
	UseSSL        bool          `mapstructure:"use_ssl"`
	RetryCount    int           `mapstructure:"retry_count"`
	RetryInterval time.Duration `mapstructure:"retry_interval"`
}

// RabbitMQConfig definition rabbitmq setting
type RabbitMQConfig struct {
	IP            string        `mapstructure:"ip"`
	Port          string        `mapstructure:"port"`
	User          string        `mapstructure:"user"`
	Password      string        `mapstructure:"password"`
	Queue         string        `mapstructure:"queue"`
	RetryCount    int           `mapstructure:"retry_count"`
	RetryInterval time.Duration `mapstructure:"retry_interval"`
}

// GeminiConfig definition generative AI backend
type GeminiConfig struct {
	APIKey        string `mapstructure:"api_key"`
	FastModel     string `mapstructure:"fast_model"`
	ThinkingModel string `mapstructure:"thinking_model"`
	ImageModel    string `mapstructure:"image_model"`
}
