package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/pricepulse/backend/internal/domain"
)

const (
	// Groq serves an OpenAI-compatible API
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.1-8b-instant"
	defaultTimeout = 30 * time.Second

	// Free-tier Groq allows 30 requests/minute
	defaultRequestsPerSecond = 0.5
	defaultBurst             = 5

	// Confidence reported for accepted model classifications
	llmClassificationConfidence = 0.9
)

// Config holds LLM client configuration.
type Config struct {
	APIKey            string
	BaseURL           string
	Model             string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Client implements the extraction and classification adapters over an
// OpenAI-compatible chat completion API. Without an API key it stays
// constructed but reports every call as unavailable, which keeps the
// pipeline fully operable in pattern-only mode.
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

// NewClient creates an LLM client.
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Model == "" {
		config.Model = defaultModel
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.RequestsPerSecond <= 0 {
		config.RequestsPerSecond = defaultRequestsPerSecond
	}
	if config.Burst <= 0 {
		config.Burst = defaultBurst
	}

	c := &Client{
		model:   config.Model,
		timeout: config.Timeout,
		limiter: rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst),
	}

	if config.APIKey == "" {
		log.Warn("[LLM] no API key configured, running in pattern-only mode")
		return c
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = config.BaseURL
	c.client = openai.NewClientWithConfig(clientConfig)

	log.Infof("[LLM] client initialized with model %s", config.Model)
	return c
}

// Available reports whether the model tier can be called at all.
func (c *Client) Available() bool {
	return c.client != nil
}

// TryExtract asks the model for the structured fields of a product name.
// Extraction runs at temperature 0.
func (c *Client) TryExtract(ctx context.Context, name string) (*domain.ExtractedFields, error) {
	content, err := c.complete(ctx, extractionSystemPrompt,
		fmt.Sprintf("Extract: Product=%q", name), 0)
	if err != nil {
		return nil, err
	}

	var payload struct {
		ProductName string  `json:"product_name"`
		Origin      *string `json:"origin"`
		Brand       *string `json:"brand"`
		Unit        string  `json:"unit"`
		Price       float64 `json:"price"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if payload.ProductName == "" {
		return nil, fmt.Errorf("%w: missing product_name", domain.ErrMalformedResponse)
	}

	return &domain.ExtractedFields{
		ProductName: payload.ProductName,
		Origin:      payload.Origin,
		Brand:       payload.Brand,
		Unit:        payload.Unit,
		Price:       payload.Price,
	}, nil
}

// TryClassify asks the model to pick a category from the closed set. The
// prompt enumerates the set; an answer outside it is a malformed response.
func (c *Client) TryClassify(ctx context.Context, name string) (*domain.ClassificationResult, error) {
	content, err := c.complete(ctx, classificationSystemPrompt,
		"Classify this product: "+name, 0)
	if err != nil {
		return nil, err
	}

	category := domain.Category(strings.Trim(stripCodeFences(content), `" .`))
	if !category.Valid() {
		return nil, fmt.Errorf("%w: category %q not in closed set", domain.ErrMalformedResponse, content)
	}

	return &domain.ClassificationResult{
		Category:   category,
		Confidence: llmClassificationConfidence,
		Method:     domain.ClassificationLLM,
	}, nil
}

// complete runs one chat completion and returns the trimmed content.
func (c *Client) complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	if c.client == nil {
		return "", domain.ErrLLMUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", classifyRequestError(err)
	}

	// The request encoder drops a zero temperature, which would leave the
	// provider at its default. Send the smallest positive value instead so
	// temperature 0 actually reaches the wire.
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", classifyRequestError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", domain.ErrMalformedResponse)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// classifyRequestError maps transport failures onto the adapter failure
// taxonomy the arbiters interpret.
func classifyRequestError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrLLMTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("llm request cancelled: %w", err)
	}
	return fmt.Errorf("llm request failed: %w", err)
}

// stripCodeFences removes a markdown code fence the model sometimes wraps
// around JSON despite the prompt.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
