package verdict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pramana/truthlens/internal/core/common"
	"github.com/pramana/truthlens/internal/core/model"
	"github.com/pramana/truthlens/internal/llm"
)

// ModelOutput is the reasoner's view of the model's JSON answer before
// normalization. Citations stay raw because models return them as either
// strings or objects.
type ModelOutput struct {
	Verdict          string                  `json:"verdict"`
	Confidence       float64                 `json:"confidence"`
	Explanation      string                  `json:"explanation"`
	KeyFacts         []string                `json:"key_facts"`
	Citations        []json.RawMessage       `json:"citations"`
	FactCheckResults []model.FactCheckRecord `json:"fact_check_results"`
	Language         string                  `json:"language"`
	Mode             string                  `json:"mode"`
	Timestamp        string                  `json:"timestamp"`
}

const degradedExplanation = "The model returned no parsable JSON verdict."

const noEvidenceSentence = "No independent evidence was retrieved for this claim."
const noFactCheckSentence = "No published fact-checks were found for this claim."

// Reasoner builds the evidence-grounded prompt, invokes the model and
// parses its free-form output into ModelOutput. Unparsable output becomes a
// degraded record; only a genuine model failure (or an image the model
// rejects) is surfaced as an error.
type Reasoner struct {
	LLM     llm.Client
	Prompts map[string]string
	Timeout time.Duration
}

func NewReasoner(client llm.Client, prompts map[string]string, timeout time.Duration) *Reasoner {
	return &Reasoner{
		LLM:     client,
		Prompts: prompts,
		Timeout: timeout,
	}
}

func (r *Reasoner) Reason(ctx context.Context, claimText, lang string, bundle model.Bundle, image []byte, mimeType string) (ModelOutput, error) {
	prompt := r.buildPrompt(claimText, lang, bundle)

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var raw string
	var err error
	if len(image) > 0 {
		raw, err = r.LLM.GenerateVision(ctx, prompt, image, mimeType)
	} else {
		raw, err = r.LLM.Generate(ctx, prompt)
	}
	if err != nil {
		if errors.Is(err, llm.ErrUnsupportedMedia) {
			return ModelOutput{}, err
		}
		return ModelOutput{}, fmt.Errorf("reasoning model call failed: %w", err)
	}

	out, perr := common.ParseJSON[ModelOutput](raw)
	if perr != nil || out.Verdict == "" {
		return degraded(raw), nil
	}

	if out.Confidence < 0 {
		out.Confidence = 0
	} else if out.Confidence > 1 {
		out.Confidence = 1
	}
	if out.Timestamp == "" {
		out.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	return out, nil
}

func (r *Reasoner) buildPrompt(claimText, lang string, bundle model.Bundle) string {
	tpl := r.Prompts[lang]
	if tpl == "" {
		tpl = defaultVerifyPrompts[lang]
	}
	if tpl == "" {
		tpl = defaultVerifyPrompts["en"]
	}

	year := time.Now().UTC().Year()
	return fmt.Sprintf(tpl, claimText, formatEvidence(bundle.Evidence), formatFactChecks(bundle.FactCheckRecords), year)
}

func formatEvidence(items []model.EvidenceItem) string {
	if len(items) == 0 {
		return noEvidenceSentence
	}
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s — %s (%s, %s)\n", i+1, item.Title, item.Snippet, item.Source, item.URL)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatFactChecks(records []model.FactCheckRecord) string {
	if len(records) == 0 {
		return noFactCheckSentence
	}
	var b strings.Builder
	for i, rec := range records {
		fmt.Fprintf(&b, "%d. %q rated %q by %s (%s)\n", i+1, rec.ClaimText, rec.Rating, rec.Publisher, rec.URL)
	}
	return strings.TrimRight(b.String(), "\n")
}

func degraded(raw string) ModelOutput {
	explanation := strings.TrimSpace(raw)
	if explanation == "" {
		explanation = degradedExplanation
	}
	return ModelOutput{
		Verdict:          model.VerdictUnverified,
		Confidence:       0.5,
		Explanation:      explanation,
		KeyFacts:         []string{},
		Citations:        []json.RawMessage{},
		FactCheckResults: []model.FactCheckRecord{},
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	}
}
