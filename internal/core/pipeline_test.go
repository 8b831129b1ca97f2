package core

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pramana/truthlens/internal/core/claim"
	"github.com/pramana/truthlens/internal/core/evidence"
	"github.com/pramana/truthlens/internal/core/model"
	"github.com/pramana/truthlens/internal/core/verdict"
	"github.com/pramana/truthlens/internal/llm"
)

func verdictReasoner(mock *MockLLM) *verdict.Reasoner {
	return verdict.NewReasoner(mock, nil, time.Second)
}

const skyClaimsJSON = `{
	"claims": [
		{
			"text": "The sky is green",
			"claimReview": [
				{
					"title": "No, the sky is not green",
					"url": "https://factcheck.example/sky-green",
					"publisher": {"name": "Example Checker"},
					"textualRating": "False",
					"reviewDate": "2025-11-02"
				}
			]
		}
	]
}`

func newTestPipeline(t *testing.T, mock *MockLLM, claimsBody string) *Pipeline {
	t.Helper()

	fcServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, claimsBody)
	}))
	t.Cleanup(fcServer.Close)

	newsServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": []}`)
	}))
	t.Cleanup(newsServer.Close)

	resolver := claim.NewResolver(
		claim.NewExtractor(mock, ""),
		claim.NewRefiner(mock, ""),
		claim.NewCaptioner(mock, ""),
	)
	aggregator := evidence.NewAggregator(
		evidence.NewFactCheckClient(fcServer.URL, "test-key"),
		evidence.NewNewsClient(newsServer.URL, ""),
		evidence.NewReranker(mock),
		time.Second,
	)
	reasoner := verdictReasoner(mock)
	return NewPipeline(resolver, aggregator, reasoner)
}

func TestVerifyFalseClaimEndToEnd(t *testing.T) {
	mock := &MockLLM{Response: `{
		"verdict": "false",
		"confidence": 0.97,
		"explanation": "Published fact-checks rate this claim False.",
		"key_facts": ["The sky appears blue due to Rayleigh scattering"]
	}`}
	p := newTestPipeline(t, mock, skyClaimsJSON)

	outcome, err := p.Verify(context.Background(), model.Request{Text: "The sky is green", Mode: "fast"})

	require.NoError(t, err)
	result := outcome.Result
	assert.NotEqual(t, model.VerdictTrue, result.Verdict)

	require.NotEmpty(t, result.Citations)
	assert.Equal(t, "https://factcheck.example/sky-green", result.Citations[0].URL)

	require.Len(t, result.FactCheckResults, 1)
	assert.Equal(t, "False", result.FactCheckResults[0].Rating)

	assert.Equal(t, "en", result.Language)
	assert.Equal(t, "fast", result.Mode)
	assert.NotEmpty(t, result.Timestamp)
	assert.Equal(t, "The sky is green", outcome.ClaimText)
}

func TestVerifyEmptyRequestIsClientError(t *testing.T) {
	p := newTestPipeline(t, &MockLLM{}, `{"claims": []}`)

	_, err := p.Verify(context.Background(), model.Request{})

	assert.ErrorIs(t, err, claim.ErrNoClaim)
}

func TestVerifyUnreadableImageWithCaptionRejection(t *testing.T) {
	mock := &MockLLM{
		// OCR never reaches the model (the image fails to decode); the one
		// vision call is the caption attempt, which the model rejects.
		VisionReplies: []visionReply{
			{err: fmt.Errorf("%w: cannot process", llm.ErrUnsupportedMedia)},
		},
	}
	p := newTestPipeline(t, mock, `{"claims": []}`)

	req := model.Request{Image: []byte("not an image"), ImageMIME: "image/png"}
	_, err := p.Verify(context.Background(), req)

	assert.ErrorIs(t, err, claim.ErrNoClaim)
	assert.Zero(t, mock.GenerateCalls, "reasoning must not run without a claim")
}

func TestVerifyTextOnlySkipsImagePath(t *testing.T) {
	mock := &MockLLM{Response: `{"verdict": "unverified", "confidence": 0.4, "explanation": "x"}`}
	p := newTestPipeline(t, mock, `{"claims": []}`)

	outcome, err := p.Verify(context.Background(), model.Request{Text: "  Water boils at 100C at sea level  "})

	require.NoError(t, err)
	assert.Equal(t, "Water boils at 100C at sea level", outcome.ClaimText)
	assert.Zero(t, mock.VisionCalls)
}

func TestVerifyFutureDatedClaim(t *testing.T) {
	futureYear := time.Now().UTC().Year() + 2
	mock := &MockLLM{Response: fmt.Sprintf(`{
		"verdict": "unknown",
		"confidence": 0.2,
		"explanation": "The claim refers to %d, which has not happened yet."
	}`, futureYear)}
	p := newTestPipeline(t, mock, `{"claims": []}`)

	claimText := fmt.Sprintf("The %d election was cancelled", futureYear)
	outcome, err := p.Verify(context.Background(), model.Request{Text: claimText})

	require.NoError(t, err)
	assert.Equal(t, model.VerdictUnknown, outcome.Result.Verdict)
	assert.Less(t, outcome.Result.Confidence, 0.5)
}

func TestVerifyDetectsLanguageWhenAuto(t *testing.T) {
	mock := &MockLLM{Response: `{"verdict": "unverified", "confidence": 0.4, "explanation": "x"}`}
	p := newTestPipeline(t, mock, `{"claims": []}`)

	outcome, err := p.Verify(context.Background(), model.Request{Text: "आसमान हरा है", Language: "auto"})

	require.NoError(t, err)
	assert.Equal(t, "hi", outcome.Language)
	assert.Equal(t, "hi", outcome.Result.Language)
}
