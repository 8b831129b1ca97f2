package claim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pramana/truthlens/internal/llm"
)

const defaultCaptionPrompt = `Describe what this image shows in exactly one neutral, factual sentence in language %q.
Do not speculate about intent or authenticity. Reply with only the sentence.`

// Captioner produces a one-sentence neutral description of an image. It is
// the last resort for deriving claim text. Generic failures yield an empty
// caption; a media rejection from the model is reported so the caller can
// distinguish an unusable image from a merely undescribable one.
type Captioner struct {
	LLM    llm.Client
	Prompt string
}

func NewCaptioner(client llm.Client, prompt string) *Captioner {
	if prompt == "" {
		prompt = defaultCaptionPrompt
	}
	return &Captioner{LLM: client, Prompt: prompt}
}

func (c *Captioner) Caption(ctx context.Context, img []byte, mimeType string, lang string) (string, error) {
	prompt := fmt.Sprintf(c.Prompt, lang)

	out, err := c.LLM.GenerateVision(ctx, prompt, img, mimeType)
	if err != nil {
		if errors.Is(err, llm.ErrUnsupportedMedia) {
			return "", err
		}
		slog.Debug("caption: model call failed", "error", err)
		return "", nil
	}
	return strings.TrimSpace(out), nil
}
