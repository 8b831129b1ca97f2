package claim

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pramana/truthlens/internal/llm"
)

const defaultRefinePrompt = `The following text was extracted from an image by OCR and may be noisy or fragmented.
Rewrite it as one clear, concise factual claim suitable for fact-checking. Answer in language %q.
Reply with only the claim, no preamble.

Text:
%s`

// Refiner turns noisy OCR output into a single checkable statement.
// Refinement must never block the pipeline: on any model error the raw
// input is returned unchanged.
type Refiner struct {
	LLM    llm.Client
	Prompt string
}

func NewRefiner(client llm.Client, prompt string) *Refiner {
	if prompt == "" {
		prompt = defaultRefinePrompt
	}
	return &Refiner{LLM: client, Prompt: prompt}
}

func (r *Refiner) Refine(ctx context.Context, raw string, lang string) string {
	prompt := fmt.Sprintf(r.Prompt, lang, raw)

	out, err := r.LLM.Generate(ctx, prompt)
	if err != nil {
		slog.Debug("refine: model call failed, keeping raw text", "error", err)
		return raw
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return raw
	}
	return out
}
