package llm

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"
)

type ClaudeClient struct {
	client *anthropic.Client
	model  string
}

func NewClaudeClient(apiKey string, model string, baseURL string) *ClaudeClient {
	var opts []anthropic.ClientOption
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	client := anthropic.NewClient(apiKey, opts...)

	return &ClaudeClient{
		client: client,
		model:  model,
	}
}

func (c *ClaudeClient) Generate(ctx context.Context, prompt string) (string, error) {
	return c.send(ctx, []anthropic.MessageContent{
		anthropic.NewTextMessageContent(prompt),
	})
}

func (c *ClaudeClient) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	if err := checkImageMIME(mimeType); err != nil {
		return "", err
	}

	out, err := c.send(ctx, []anthropic.MessageContent{
		anthropic.NewImageMessageContent(
			anthropic.NewMessageContentSource(anthropic.MessagesContentSourceTypeBase64, mimeType, image),
		),
		anthropic.NewTextMessageContent(prompt),
	})
	if err != nil && mediaRejected(err) {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedMedia, err)
	}
	return out, err
}

func (c *ClaudeClient) send(ctx context.Context, content []anthropic.MessageContent) (string, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(c.model),
		Messages: []anthropic.Message{
			{
				Role:    anthropic.RoleUser,
				Content: content,
			},
		},
		MaxTokens: 2000,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Content) > 0 && resp.Content[0].Text != nil {
		return *resp.Content[0].Text, nil
	}
	return "", fmt.Errorf("no response content")
}
