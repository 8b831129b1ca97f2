package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey string, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

func (c *GeminiClient) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	if err := checkImageMIME(mimeType); err != nil {
		return "", err
	}

	// genai wants the bare subtype ("jpeg"), not the full MIME type.
	format := strings.TrimPrefix(strings.ToLower(mimeType), "image/")

	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt), genai.ImageData(format, image))
	if err != nil {
		if mediaRejected(err) {
			return "", fmt.Errorf("%w: %v", ErrUnsupportedMedia, err)
		}
		return "", err
	}
	return firstText(resp)
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil && len(resp.Candidates[0].Content.Parts) > 0 {
		if txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
			return string(txt), nil
		}
	}
	return "", fmt.Errorf("no response candidates or content")
}
