package generator

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
	openai "github.com/sashabaranov/go-openai"

	"github.com/storygen/backend/internal/config"
)

// LLMClient is the interface all generation backends satisfy.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (*LLMResponse, error)
}

// LLMResponse holds the raw response content and token usage.
type LLMResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// SamplingParams are the fixed sampling settings sent with every call.
type SamplingParams struct {
	Temperature float64
	TopP        float64
	TopK        int
}

// GenerationError wraps a provider or transport failure. It is propagated
// up and aborts the whole request; retries happen in the loop, not here.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewLLMClient selects a backend from configuration.
func NewLLMClient(cfg *config.Config) (LLMClient, error) {
	sampling := SamplingParams{
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
		TopK:        cfg.TopK,
	}

	switch cfg.GeneratorBackend {
	case "anthropic":
		log.Println("Generator using Anthropic API:", cfg.AnthropicModel)
		return NewAnthropicClient(cfg.AnthropicModel, sampling), nil
	case "openai":
		log.Println("Generator using OpenAI-compatible API:", cfg.OpenAIModel)
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, sampling), nil
	case "mock":
		log.Println("Generator using mock data")
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown generator backend %q", cfg.GeneratorBackend)
	}
}

// ── AnthropicClient — Anthropic SDK ────────────────────────

type AnthropicClient struct {
	client   *anthropic.Client
	model    string
	sampling SamplingParams
}

func NewAnthropicClient(model string, sampling SamplingParams) *AnthropicClient {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &AnthropicClient{client: &client, model: model, sampling: sampling}
}

func (c *AnthropicClient) Generate(ctx context.Context, prompt string) (*LLMResponse, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   2048,
		Temperature: param.NewOpt(c.sampling.Temperature),
		TopP:        param.NewOpt(c.sampling.TopP),
		TopK:        param.NewOpt(int64(c.sampling.TopK)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, &GenerationError{Err: fmt.Errorf("no text content in API response")}
	}

	return &LLMResponse{
		Content:      responseText,
		PromptTokens: int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

// ── OpenAIClient — OpenAI-compatible APIs ──────────────────

// OpenAIClient talks to any OpenAI-compatible chat completion endpoint;
// BaseURL makes it usable against local gateways. The chat completion API
// has no top-k parameter, so only temperature and top-p are applied.
type OpenAIClient struct {
	client   *openai.Client
	model    string
	sampling SamplingParams
}

func NewOpenAIClient(apiKey, baseURL, model string, sampling SamplingParams) *OpenAIClient {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	return &OpenAIClient{
		client:   openai.NewClientWithConfig(clientConfig),
		model:    model,
		sampling: sampling,
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (*LLMResponse, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(c.sampling.Temperature),
		TopP:        float32(c.sampling.TopP),
	})
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, &GenerationError{Err: fmt.Errorf("empty response from API")}
	}

	return &LLMResponse{
		Content:      resp.Choices[0].Message.Content,
		PromptTokens: resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}, nil
}

// ── MockClient — Local Development ─────────────────────────

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (*LLMResponse, error) {
	return &LLMResponse{
		Content:      mockStoryText,
		PromptTokens: 800,
		OutputTokens: 400,
	}, nil
}

const mockStoryText = `Title: The Brave Little Sparrow

Once there was a small sparrow named Piku. Piku lived in a big mango tree near a school. One day a storm came and broke her nest. Piku did not cry. She picked up twigs one by one and built a new nest. Her friends saw her hard work and came to help. Soon the nest was bigger and stronger than before. The storm came again but the nest did not break. Piku chirped with joy and thanked her friends.

Moral: Hard work and good friends can fix almost anything.`
