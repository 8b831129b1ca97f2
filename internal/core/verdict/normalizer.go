package verdict

import (
	"encoding/json"
	"time"

	"github.com/pramana/truthlens/internal/core/model"
)

// Normalizer reconciles the model's structured output with the evidence the
// system retrieved on its own, so the final result never carries less than
// what the pipeline already knows. Normalizing an already-complete output
// changes nothing.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

func (n *Normalizer) Normalize(out ModelOutput, bundle model.Bundle, lang, mode string, now time.Time) model.VerdictResult {
	result := model.VerdictResult{
		Verdict:          out.Verdict,
		Confidence:       out.Confidence,
		Explanation:      out.Explanation,
		KeyFacts:         out.KeyFacts,
		FactCheckResults: out.FactCheckResults,
		Language:         out.Language,
		Mode:             out.Mode,
		Timestamp:        out.Timestamp,
	}

	result.Citations = normalizeCitations(out.Citations)
	if len(result.Citations) == 0 {
		result.Citations = citationsFromEvidence(bundle)
	}

	if len(result.FactCheckResults) == 0 {
		result.FactCheckResults = bundle.FactCheckRecords
	}

	if result.KeyFacts == nil {
		result.KeyFacts = []string{}
	}
	if result.Citations == nil {
		result.Citations = []model.Citation{}
	}
	if result.FactCheckResults == nil {
		result.FactCheckResults = []model.FactCheckRecord{}
	}

	if result.Language == "" {
		result.Language = lang
	}
	if result.Mode == "" {
		result.Mode = mode
	}
	if result.Timestamp == "" {
		result.Timestamp = now.Format(time.RFC3339)
	}
	return result
}

// modelCitation tolerates the source/publisher alias models vacillate on.
type modelCitation struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Source    string `json:"source"`
	Publisher string `json:"publisher"`
}

func normalizeCitations(raw []json.RawMessage) []model.Citation {
	var citations []model.Citation
	for _, entry := range raw {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			if s != "" {
				citations = append(citations, model.Citation{Title: s, URL: s})
			}
			continue
		}

		var c modelCitation
		if err := json.Unmarshal(entry, &c); err != nil {
			continue
		}
		if c.Title == "" && c.URL == "" {
			continue
		}
		source := c.Source
		if source == "" {
			source = c.Publisher
		}
		citations = append(citations, model.Citation{Title: c.Title, URL: c.URL, Source: source})
	}
	return citations
}

func citationsFromEvidence(bundle model.Bundle) []model.Citation {
	if len(bundle.Citations) > 0 {
		return bundle.Citations
	}
	var citations []model.Citation
	for _, item := range bundle.Evidence {
		citations = append(citations, model.Citation{
			Title:  item.Title,
			URL:    item.URL,
			Source: item.Source,
		})
	}
	return citations
}
