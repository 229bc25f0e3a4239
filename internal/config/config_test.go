package config

import (
	"errors"
	"testing"
	"time"

	"quizforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.LLM.APIKey)
	assert.Equal(t, DefaultLLMBaseURL, cfg.LLM.BaseURL)
	assert.Equal(t, DefaultLLMModel, cfg.LLM.Model)
	assert.Equal(t, []string{DefaultProvider}, cfg.LLM.Providers)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "*", cfg.Server.CORSOrigins)
	assert.Equal(t, 10*1024*1024, cfg.Upload.BodyLimit())
	assert.NotEmpty(t, cfg.Upload.Dir)
	assert.Equal(t, "test", cfg.Logger.Env)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("ENV", "test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LLM_MODEL", "other/model")
	t.Setenv("LLM_PROVIDERS", "Cerebras, Groq ,")
	t.Setenv("UPLOAD_DIR", "/tmp/custom-uploads")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "other/model", cfg.LLM.Model)
	assert.Equal(t, []string{"Cerebras", "Groq"}, cfg.LLM.Providers)
	assert.Equal(t, "/tmp/custom-uploads", cfg.Upload.Dir)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadConfig_MissingAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("ENV", "test")

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeConfiguration, domainErr.Code)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Server: ServerConfig{Port: 8000},
		LLM:    LLMConfig{APIKey: "k"},
		Upload: UploadConfig{MaxSizeMB: 10},
	}
	assert.NoError(t, valid.Validate())

	badPort := valid
	badPort.Server.Port = 0
	assert.Error(t, badPort.Validate())

	badUpload := valid
	badUpload.Upload.MaxSizeMB = 0
	assert.Error(t, badUpload.Validate())

	badMetrics := valid
	badMetrics.Metrics = MetricsConfig{Enabled: true, Path: "metrics"}
	assert.Error(t, badMetrics.Validate())
}
