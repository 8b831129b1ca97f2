package evidence

import (
	"context"
	"log/slog"
	"time"

	"github.com/pramana/truthlens/internal/core/model"
)

// maxItems caps evidence, citations and fact-check records per request.
const maxItems = 5

// Aggregator gathers corroborating material for a claim. The fact-check
// index is authoritative; the news search is a fallback used only when the
// index comes back empty. Every upstream failure degrades to zero results —
// aggregation never fails a request.
type Aggregator struct {
	FactCheck *FactCheckClient
	News      *NewsClient
	Reranker  *Reranker
	Timeout   time.Duration
}

func NewAggregator(factCheck *FactCheckClient, news *NewsClient, reranker *Reranker, timeout time.Duration) *Aggregator {
	return &Aggregator{
		FactCheck: factCheck,
		News:      news,
		Reranker:  reranker,
		Timeout:   timeout,
	}
}

func (a *Aggregator) Gather(ctx context.Context, claim, lang, mode string) model.Bundle {
	var bundle model.Bundle

	claims, err := a.searchFactChecks(ctx, claim, lang)
	if err != nil {
		slog.Warn("evidence: fact-check query failed", "error", err)
	}
	bundle.RawClaims = claims

	var fcCitations []model.Citation
	for _, cl := range claims {
		for _, review := range cl.ClaimReview {
			if len(bundle.Evidence) < maxItems {
				bundle.Evidence = append(bundle.Evidence, model.EvidenceItem{
					Title:   review.Title,
					Snippet: review.TextualRating,
					URL:     review.URL,
					Source:  review.Publisher.Name,
				})
				fcCitations = append(fcCitations, model.Citation{
					Title:  review.Title,
					URL:    review.URL,
					Source: review.Publisher.Name,
				})
			}
			if len(bundle.FactCheckRecords) < maxItems {
				bundle.FactCheckRecords = append(bundle.FactCheckRecords, model.FactCheckRecord{
					ClaimText:  cl.Text,
					Publisher:  review.Publisher.Name,
					Rating:     review.TextualRating,
					URL:        review.URL,
					ReviewDate: review.ReviewDate,
				})
			}
		}
	}

	if len(bundle.Evidence) == 0 {
		items, err := a.searchNews(ctx, claim, lang)
		if err != nil {
			slog.Warn("evidence: news fallback failed", "error", err)
		}
		if mode == "deep" && a.Reranker != nil {
			items = a.Reranker.Rank(ctx, claim, items)
		}
		if len(items) > maxItems {
			items = items[:maxItems]
		}
		bundle.Evidence = items
	}

	// Authoritative fact-check citations win over generic news links.
	if len(fcCitations) > 0 {
		bundle.Citations = fcCitations
	} else {
		for _, item := range bundle.Evidence {
			bundle.Citations = append(bundle.Citations, model.Citation{
				Title:  item.Title,
				URL:    item.URL,
				Source: item.Source,
			})
		}
	}

	return bundle
}

func (a *Aggregator) searchFactChecks(ctx context.Context, claim, lang string) ([]model.Claim, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.FactCheck.Search(ctx, claim, lang, maxItems)
}

func (a *Aggregator) searchNews(ctx context.Context, claim, lang string) ([]model.EvidenceItem, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.News.Search(ctx, claim, lang, maxItems)
}

func (a *Aggregator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.Timeout)
}
