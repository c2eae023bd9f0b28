package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// defaultTemperature keeps completions close to the retrieved context;
// faithfulness matters more than creativity here.
const defaultTemperature = 0.1

// Client wraps the OpenAI chat completions API for single-turn,
// grounded completions.
type Client struct {
	api         openai.Client
	Model       string
	Temperature float64
}

// NewClient creates a new chat completions client. Extra request options
// (base URL, custom HTTP client) are passed through to the underlying SDK
// client.
func NewClient(apiKey, model string, opts ...option.RequestOption) *Client {
	base := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(120 * time.Second),
	}
	return &Client{
		api:         openai.NewClient(append(base, opts...)...),
		Model:       model,
		Temperature: defaultTemperature,
	}
}

// Complete sends one system+user completion request and returns the model's
// reply verbatim.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(c.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
