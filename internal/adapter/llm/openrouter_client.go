package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/metrics"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// Options configures the chat-completion client
type Options struct {
	APIKey    string
	BaseURL   string
	Model     string
	Providers []string
	// HTTPClient is used as the base transport; http.DefaultTransport when nil
	HTTPClient *http.Client
}

// Client talks to an OpenAI-compatible chat-completion endpoint (OpenRouter)
// and is safe for concurrent use.
type Client struct {
	llm    *openai.LLM
	model  string
	logger *zap.Logger
}

// NewClient creates the chat-completion client. It fails when no API key is
// configured.
func NewClient(opts Options, logger *zap.Logger) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, domain.NewConfigurationError("LLM API key cannot be empty")
	}
	if opts.Model == "" {
		return nil, domain.NewConfigurationError("LLM model name cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	base := http.DefaultTransport
	httpClient := &http.Client{}
	if opts.HTTPClient != nil {
		*httpClient = *opts.HTTPClient
		if opts.HTTPClient.Transport != nil {
			base = opts.HTTPClient.Transport
		}
	}
	httpClient.Transport = newProviderTransport(base, opts.Providers)

	clientOpts := []openai.Option{
		openai.WithToken(opts.APIKey),
		openai.WithModel(opts.Model),
		openai.WithHTTPClient(httpClient),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, openai.WithBaseURL(strings.TrimRight(opts.BaseURL, "/")))
	}

	llm, err := openai.New(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo OpenAI client: %w", err)
	}

	logger.Info("LLM client initialized",
		zap.String("model", opts.Model),
		zap.String("base_url", opts.BaseURL),
		zap.Strings("providers", opts.Providers))

	return &Client{
		llm:    llm,
		model:  opts.Model,
		logger: logger,
	}, nil
}

// Complete sends one chat-completion request and returns the first choice's
// content. Every failure is reported as an LLM request error.
func (c *Client) Complete(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	content := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		content = append(content, llms.TextParts(toMessageType(m.Role), m.Content))
	}

	start := time.Now()
	resp, err := c.llm.GenerateContent(ctx, content)
	metrics.LLMCallDuration.WithLabelValues(c.model).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(c.model, "error").Inc()
		c.logger.Error("LLM call failed", zap.String("model", c.model), zap.Error(err))
		return "", domain.NewLLMRequestError(err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		metrics.LLMCallTotal.WithLabelValues(c.model, "error").Inc()
		return "", domain.NewLLMRequestError(errors.New("response contained no choices"))
	}
	metrics.LLMCallTotal.WithLabelValues(c.model, "success").Inc()

	choice := resp.Choices[0]
	c.recordTokens(choice.GenerationInfo)
	c.logger.Debug("Raw LLM response received", zap.String("raw_response", choice.Content))
	return choice.Content, nil
}

func (c *Client) recordTokens(info map[string]any) {
	for key, kind := range map[string]string{"PromptTokens": "prompt", "CompletionTokens": "completion"} {
		if n, ok := info[key].(int); ok && n > 0 {
			metrics.LLMTokensUsed.WithLabelValues(c.model, kind).Add(float64(n))
		}
	}
}

func toMessageType(role domain.Role) llms.ChatMessageType {
	if role == domain.RoleSystem {
		return llms.ChatMessageTypeSystem
	}
	return llms.ChatMessageTypeHuman
}

// Static assertion to ensure Client implements ChatCompleter
var _ domain.ChatCompleter = (*Client)(nil)
