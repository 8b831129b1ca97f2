package core

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pramana/truthlens/internal/core/claim"
	"github.com/pramana/truthlens/internal/core/evidence"
	"github.com/pramana/truthlens/internal/core/language"
	"github.com/pramana/truthlens/internal/core/model"
	"github.com/pramana/truthlens/internal/core/verdict"
)

// Pipeline runs one verification request end to end: derive the claim text,
// gather evidence, reason over it, normalize the model's answer. Evidence,
// OCR, caption and refinement failures are absorbed by their components;
// only a missing claim or a reasoner failure aborts the request.
type Pipeline struct {
	Resolver   *claim.Resolver
	Aggregator *evidence.Aggregator
	Reasoner   *verdict.Reasoner
	Normalizer *verdict.Normalizer
}

func NewPipeline(resolver *claim.Resolver, aggregator *evidence.Aggregator, reasoner *verdict.Reasoner) *Pipeline {
	return &Pipeline{
		Resolver:   resolver,
		Aggregator: aggregator,
		Reasoner:   reasoner,
		Normalizer: verdict.NewNormalizer(),
	}
}

// Outcome is the pipeline's bookkeeping alongside the final result: the
// claim text actually verified and the raw evidence bundle for logging.
type Outcome struct {
	Result    model.VerdictResult
	ClaimText string
	Language  string
	Bundle    model.Bundle
}

func (p *Pipeline) Verify(ctx context.Context, req model.Request) (*Outcome, error) {
	lang := req.Language
	if !language.Supported(lang) {
		lang = language.Detect(req.Text)
	}
	mode := req.Mode
	if mode == "" {
		mode = "fast"
	}

	claimText, err := p.Resolver.Resolve(ctx, req, lang)
	if err != nil {
		return nil, err
	}
	if !language.Supported(req.Language) && strings.TrimSpace(req.Text) == "" {
		// The claim was derived from the image; detect on what we got.
		lang = language.Detect(claimText)
	}
	slog.Info("pipeline: claim resolved", "language", lang, "mode", mode)

	bundle := p.Aggregator.Gather(ctx, claimText, lang, mode)
	slog.Info("pipeline: evidence gathered",
		"evidence", len(bundle.Evidence),
		"fact_checks", len(bundle.FactCheckRecords))

	out, err := p.Reasoner.Reason(ctx, claimText, lang, bundle, req.Image, req.ImageMIME)
	if err != nil {
		return nil, err
	}

	result := p.Normalizer.Normalize(out, bundle, lang, mode, time.Now().UTC())

	return &Outcome{
		Result:    result,
		ClaimText: claimText,
		Language:  lang,
		Bundle:    bundle,
	}, nil
}
