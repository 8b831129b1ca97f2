package evidence

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/pramana/truthlens/internal/core/model"
	"github.com/pramana/truthlens/internal/llm"
)

// Reranker orders evidence items by relevance to the claim using the
// reasoning model. Only used for news-fallback results in deep mode; any
// failure keeps the original order.
type Reranker struct {
	LLM llm.Client
}

func NewReranker(client llm.Client) *Reranker {
	return &Reranker{LLM: client}
}

var indexPattern = regexp.MustCompile(`\d+`)

func (r *Reranker) Rank(ctx context.Context, claim string, items []model.EvidenceItem) []model.EvidenceItem {
	if len(items) < 2 {
		return items
	}

	docList := ""
	for i, item := range items {
		snippet := item.Snippet
		if len(snippet) > 200 {
			snippet = snippet[:200] + "..."
		}
		docList += fmt.Sprintf("[%d] %s — %s\n", i, item.Title, snippet)
	}

	prompt := fmt.Sprintf(`You are a search relevance optimization system.
Claim: %s

Articles:
%s

Rank the articles above by how directly they bear on the claim.
Output ONLY the indices in order of relevance, separated by commas.
Example: 0, 2, 1
Do not output any other text.`, claim, docList)

	resp, err := r.LLM.Generate(ctx, prompt)
	if err != nil {
		return items
	}

	seen := make(map[int]bool)
	ranked := make([]model.EvidenceItem, 0, len(items))
	for _, m := range indexPattern.FindAllString(resp, -1) {
		idx, err := strconv.Atoi(m)
		if err != nil || idx < 0 || idx >= len(items) || seen[idx] {
			continue
		}
		seen[idx] = true
		ranked = append(ranked, items[idx])
	}

	// Anything the model skipped keeps its original relative order.
	for i, item := range items {
		if !seen[i] {
			ranked = append(ranked, item)
		}
	}
	return ranked
}
