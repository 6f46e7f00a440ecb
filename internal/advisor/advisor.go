// Package advisor generates non-medical wellness advice from a free-text
// symptom description using an OpenAI-compatible chat model via langchaingo.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

var (
	// ErrInvalidConfig indicates invalid configuration
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyResponse indicates the model returned no usable text
	ErrEmptyResponse = errors.New("empty model response")
)

// SystemPrompt frames every request as non-medical wellness guidance.
const SystemPrompt = "You are a helpful menstrual health wellness advisor. " +
	"Provide NON-MEDICAL wellness advice only. " +
	"Include suggestions about nutrition, hydration, rest, exercise, and self-care. " +
	"Always remind users to consult healthcare providers for medical concerns. " +
	"Keep responses friendly, supportive, and informative. Do not diagnose or prescribe."

// Config holds configuration for the advisor.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: API key required", ErrInvalidConfig)
	}
	if c.Model == "" {
		return fmt.Errorf("%w: model required", ErrInvalidConfig)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("%w: max tokens must be positive", ErrInvalidConfig)
	}
	return nil
}

// Generator is the slice of llms.Model the advisor needs.
type Generator interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// Advisor turns symptom descriptions into wellness advice.
type Advisor struct {
	model       Generator
	temperature float64
	maxTokens   int
}

// New creates an advisor backed by an OpenAI-compatible endpoint.
func New(config Config) (*Advisor, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	opts := []openai.Option{
		openai.WithToken(config.APIKey),
		openai.WithModel(config.Model),
	}
	if config.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(config.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating openai client: %w", err)
	}

	return NewWithModel(llm, config.Temperature, config.MaxTokens), nil
}

// NewWithModel creates an advisor around an existing model.
func NewWithModel(model Generator, temperature float64, maxTokens int) *Advisor {
	return &Advisor{
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Advise returns the model's advice for text.
func (a *Advisor) Advise(ctx context.Context, text string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, SystemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, text),
	}

	resp, err := a.model.GenerateContent(ctx, messages,
		llms.WithTemperature(a.temperature),
		llms.WithMaxTokens(a.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("generating advice: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	content := strings.TrimSpace(resp.Choices[0].Content)
	if content == "" {
		return "", ErrEmptyResponse
	}

	return content, nil
}
