package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	ShortfallPad   = "pad"
	ShortfallError = "error"
)

type Config struct {
	Server    ServerConfig
	Survey    SurveyConfig    `mapstructure:"survey"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	CheckOnly bool `mapstructure:"-"` // 仅校验题库后退出
}

type ServerConfig struct {
	Port string
	Mode string
}

// SurveyConfig 题库加载与计分策略
type SurveyConfig struct {
	Title               string `mapstructure:"title"`
	Source              string `mapstructure:"source"` // 本地路径或对象存储 key
	MinQuestionLength   int    `mapstructure:"min_question_length"`
	ShortfallPolicy     string `mapstructure:"shortfall_policy"` // pad | error
	IncludePlaceholders bool   `mapstructure:"include_placeholders"`
	WatchSource         bool   `mapstructure:"watch_source"`
	DefaultName         string `mapstructure:"default_name"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioSecure   bool   `mapstructure:"minio_secure"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("survey.title", "리더십 영향력 진단")
	v.SetDefault("survey.source", "data.xlsx")
	v.SetDefault("survey.min_question_length", 10)
	v.SetDefault("survey.shortfall_policy", ShortfallPad)
	v.SetDefault("survey.include_placeholders", true)
	v.SetDefault("survey.watch_source", true)
	v.SetDefault("survey.default_name", "Guest")

	v.SetDefault("storage.type", "local")

	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)

	v.SetDefault("log.file", "logs/app.log")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age", 30)
}

// New 创建带默认值与环境变量绑定的 viper 实例
func New(path string) *viper.Viper {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("SURVEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// Survey
	v.BindEnv("survey.source", "SURVEY_SOURCE")
	v.BindEnv("survey.shortfall_policy", "SURVEY_SHORTFALL_POLICY")

	// Storage
	v.BindEnv("storage.type", "STORAGE_TYPE")
	v.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("storage.minio_bucket", "MINIO_BUCKET")
	v.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	v.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	v.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	v.BindEnv("storage.oss_bucket", "OSS_BUCKET")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	setDefaults(v)
	return v
}

// LoadConfig 读取 path 目录下的 config.yaml；文件不存在时使用默认值
func LoadConfig(path string) (*Config, error) {
	v := New(path)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	return Decode(v)
}

// Decode 从 viper 实例解析并校验配置
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Server.Mode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server.mode %q", c.Server.Mode)
	}
	switch c.Survey.ShortfallPolicy {
	case ShortfallPad, ShortfallError:
	default:
		return fmt.Errorf("invalid survey.shortfall_policy %q (want %q or %q)", c.Survey.ShortfallPolicy, ShortfallPad, ShortfallError)
	}
	if c.Survey.MinQuestionLength < 0 {
		return fmt.Errorf("survey.min_question_length must not be negative")
	}
	if strings.TrimSpace(c.Survey.Source) == "" {
		return fmt.Errorf("survey.source is required")
	}
	switch c.Storage.Type {
	case "local", "minio", "oss":
	default:
		return fmt.Errorf("unsupported storage.type %q", c.Storage.Type)
	}
	if c.RateLimit.MaxRequests <= 0 || c.RateLimit.WindowMinutes <= 0 {
		return fmt.Errorf("rate_limit values must be positive")
	}
	return nil
}
