package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quizforge/internal/domain"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultLLMBaseURL = "https://openrouter.ai/api/v1"
	DefaultLLMModel   = "qwen/qwen3-32b"
	DefaultProvider   = "Cerebras"
)

type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	Upload  UploadConfig
	Logger  LoggerConfig
	Metrics MetricsConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CORSOrigins  string
}

type LLMConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	Providers []string
}

type UploadConfig struct {
	Dir       string
	MaxSizeMB int
}

type LoggerConfig struct {
	Level string
	Env   string
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

// BodyLimit returns the maximum request body size in bytes
func (u UploadConfig) BodyLimit() int {
	return u.MaxSizeMB * 1024 * 1024
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("server.cors_origins", "*")

	v.SetDefault("llm.base_url", DefaultLLMBaseURL)
	v.SetDefault("llm.model", DefaultLLMModel)
	v.SetDefault("llm.providers", []string{DefaultProvider})

	v.SetDefault("upload.dir", filepath.Join(os.TempDir(), "quizforge-uploads"))
	v.SetDefault("upload.max_size_mb", 10)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

func LoadConfig() (*Config, error) {
	// A missing .env is fine; real deployments pass the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			IdleTimeout:  time.Duration(v.GetInt("server.idle_timeout")) * time.Second,
			CORSOrigins:  v.GetString("server.cors_origins"),
		},
		LLM: LLMConfig{
			APIKey:    v.GetString("llm.api_key"),
			BaseURL:   v.GetString("llm.base_url"),
			Model:     v.GetString("llm.model"),
			Providers: v.GetStringSlice("llm.providers"),
		},
		Upload: UploadConfig{
			Dir:       v.GetString("upload.dir"),
			MaxSizeMB: v.GetInt("upload.max_size_mb"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("metrics.enabled"),
			Path:    v.GetString("metrics.path"),
		},
	}

	// Short environment names used by the deployment scripts
	if apiKey := os.Getenv("API_KEY"); apiKey != "" {
		config.LLM.APIKey = apiKey
	}
	if providers := os.Getenv("LLM_PROVIDERS"); providers != "" {
		config.LLM.Providers = splitList(providers)
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the settings the service cannot start without
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return domain.NewConfigurationError("API_KEY environment variable is required")
	}
	if c.Server.Port <= 0 {
		return domain.NewConfigurationError(fmt.Sprintf("invalid server port: %d", c.Server.Port))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return domain.NewConfigurationError(fmt.Sprintf("invalid metrics.path: %q", c.Metrics.Path))
	}
	if c.Upload.MaxSizeMB <= 0 {
		return domain.NewConfigurationError(fmt.Sprintf("invalid upload.max_size_mb: %d", c.Upload.MaxSizeMB))
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
