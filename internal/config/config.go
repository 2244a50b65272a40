package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"` // development, production, test
	} `yaml:"server"`

	Database struct {
		Driver       string `yaml:"driver"` // postgres, sqlite
		DSN          string `yaml:"url"`
		AutoMigrate  bool   `yaml:"auto_migrate"`
		MaxOpenConns int    `yaml:"max_open_conns"`
		MaxIdleConns int    `yaml:"max_idle_conns"`
		SlowQueryMs  int    `yaml:"slow_query_ms"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // минуты, для выпуска dev-токенов
	} `yaml:"jwt"`

	Storage struct {
		Type       string `yaml:"type"`        // local, s3, cloudflare_r2
		BasePath   string `yaml:"base_path"`   // For local storage
		BaseURL    string `yaml:"base_url"`    // Public URL base
		Bucket     string `yaml:"bucket"`      // For S3/R2
		Region     string `yaml:"region"`      // For S3
		AccessKey  string `yaml:"access_key"`  // For S3/R2
		SecretKey  string `yaml:"secret_key"`  // For S3/R2
		Endpoint   string `yaml:"endpoint"`    // For R2 or custom S3
		UseSSL     bool   `yaml:"use_ssl"`     // For S3/R2
		PublicRead bool   `yaml:"public_read"` // Make files public
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // Max file size in bytes
		AllowedTypes []string `yaml:"allowed_types"` // Allowed MIME types
		ImageQuality int      `yaml:"image_quality"` // JPEG quality (1-100)
		QueueSize    int      `yaml:"queue_size"`    // буфер очереди обработки медиа
	} `yaml:"upload"`

	Pagination struct {
		DefaultLimit int `yaml:"default_limit"`
		MaxLimit     int `yaml:"max_limit"`
	} `yaml:"pagination"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

var (
	AppConfig *Config
	loadOnce  sync.Once
)

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	var cfg Config

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 4000
	cfg.Server.Env = "development"

	cfg.Database.Driver = "postgres"
	cfg.Database.AutoMigrate = true
	cfg.Database.MaxOpenConns = 25
	cfg.Database.MaxIdleConns = 5
	cfg.Database.SlowQueryMs = 200

	cfg.JWT.TTL = 60

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/uploads"

	cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	cfg.Upload.AllowedTypes = []string{
		"image/jpeg", "image/png", "image/gif", "image/webp",
		"video/mp4", "video/quicktime",
	}
	cfg.Upload.ImageQuality = 85
	cfg.Upload.QueueSize = 100

	cfg.Pagination.DefaultLimit = 10
	cfg.Pagination.MaxLimit = 100

	cfg.CORS.AllowedOrigins = []string{"*"}

	return &cfg
}

// Load читает .env (если есть), затем YAML-файл (если есть), затем
// перекрывает значения переменными окружения.
func Load(path string) (*Config, error) {
	// .env не обязателен, в контейнере переменные приходят снаружи
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// работаем только на переменных окружения
	default:
		return nil, fmt.Errorf("failed to read config file at %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setString("SERVER_HOST", &cfg.Server.Host)
	setString("SERVER_ENV", &cfg.Server.Env)
	setString("DATABASE_URL", &cfg.Database.DSN)
	setString("DATABASE_DRIVER", &cfg.Database.Driver)
	setString("JWT_SECRET", &cfg.JWT.Secret)
	setString("STORAGE_TYPE", &cfg.Storage.Type)
	setString("STORAGE_BASE_PATH", &cfg.Storage.BasePath)
	setString("STORAGE_BASE_URL", &cfg.Storage.BaseURL)
	setString("STORAGE_BUCKET", &cfg.Storage.Bucket)
	setString("STORAGE_REGION", &cfg.Storage.Region)
	setString("STORAGE_ACCESS_KEY", &cfg.Storage.AccessKey)
	setString("STORAGE_SECRET_KEY", &cfg.Storage.SecretKey)
	setString("STORAGE_ENDPOINT", &cfg.Storage.Endpoint)

	if v := os.Getenv("SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = strings.Split(v, ",")
	}
	return nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database url is required (database.url or DATABASE_URL)")
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt secret is required (jwt.secret or JWT_SECRET)")
	}
	if c.Pagination.MaxLimit < 1 || c.Pagination.DefaultLimit < 1 {
		return fmt.Errorf("pagination limits must be positive")
	}
	return nil
}

// LoadConfig загружает глобальную конфигурацию один раз
func LoadConfig() error {
	var err error
	loadOnce.Do(func() {
		AppConfig, err = Load("")
	})
	return err
}

func GetConfig() *Config {
	return AppConfig
}
