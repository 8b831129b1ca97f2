package claim

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pramana/truthlens/internal/core/model"
	"github.com/pramana/truthlens/internal/llm"
)

// ErrNoClaim is the client-input failure: nothing in the request could be
// turned into claim text.
var ErrNoClaim = errors.New("no claim text could be derived from the request")

// Placeholder is the claim text used when an image yields neither OCR text
// nor a caption but is otherwise acceptable.
const Placeholder = "Image-only verification requested"

// Provider is one strategy for deriving claim text. An empty result with a
// nil error means "not applicable, try the next one".
type Provider func(ctx context.Context, req model.Request) (string, error)

// Resolver derives the single claim string from a request by trying an
// ordered chain of providers: supplied text, OCR plus refinement, image
// caption. The chain ends in either the placeholder or ErrNoClaim.
type Resolver struct {
	Extractor *Extractor
	Refiner   *Refiner
	Captioner *Captioner
}

func NewResolver(extractor *Extractor, refiner *Refiner, captioner *Captioner) *Resolver {
	return &Resolver{
		Extractor: extractor,
		Refiner:   refiner,
		Captioner: captioner,
	}
}

func (r *Resolver) Resolve(ctx context.Context, req model.Request, lang string) (string, error) {
	providers := []Provider{
		r.fromText,
		r.fromOCR(lang),
		r.fromCaption(lang),
	}

	for _, p := range providers {
		text, err := p(ctx, req)
		if err != nil {
			return "", err
		}
		if text != "" {
			return text, nil
		}
	}

	if !req.HasImage() {
		return "", ErrNoClaim
	}
	return Placeholder, nil
}

func (r *Resolver) fromText(_ context.Context, req model.Request) (string, error) {
	return strings.TrimSpace(req.Text), nil
}

func (r *Resolver) fromOCR(lang string) Provider {
	return func(ctx context.Context, req model.Request) (string, error) {
		if !req.HasImage() {
			return "", nil
		}
		raw := r.Extractor.Extract(ctx, req.Image, req.ImageMIME)
		if raw == "" {
			return "", nil
		}
		return r.Refiner.Refine(ctx, raw, lang), nil
	}
}

func (r *Resolver) fromCaption(lang string) Provider {
	return func(ctx context.Context, req model.Request) (string, error) {
		if !req.HasImage() {
			return "", nil
		}
		caption, err := r.Captioner.Caption(ctx, req.Image, req.ImageMIME, lang)
		if errors.Is(err, llm.ErrUnsupportedMedia) {
			// The model refused the image outright; there is no further
			// way to derive a claim, so this is a client-input failure.
			return "", fmt.Errorf("%w: image rejected by the model", ErrNoClaim)
		}
		return caption, nil
	}
}
