package evidence

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const claimsJSON = `{
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

const newsJSON = `{
	"results": [
		{"title": "Sky color explained", "snippet": "Why the sky is blue", "link": "https://news.example/sky", "source": "Example News"},
		{"title": "Atmospheric optics", "description": "Rayleigh scattering", "sourceUrl": "https://news.example/optics", "source": "Example News"}
	]
}`

func newServers(t *testing.T, claimsBody string, newsBody string) (*FactCheckClient, *NewsClient, *int32, *int32) {
	t.Helper()

	var fcHits, newsHits int32

	fcServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fcHits, 1)
		assert.Equal(t, "/claims:search", r.URL.Path)
		fmt.Fprint(w, claimsBody)
	}))
	t.Cleanup(fcServer.Close)

	newsServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&newsHits, 1)
		fmt.Fprint(w, newsBody)
	}))
	t.Cleanup(newsServer.Close)

	fc := NewFactCheckClient(fcServer.URL, "test-key")
	news := NewNewsClient(newsServer.URL, "")
	return fc, news, &fcHits, &newsHits
}

func TestGatherFactCheckHitSkipsNews(t *testing.T) {
	fc, news, _, newsHits := newServers(t, claimsJSON, newsJSON)
	a := NewAggregator(fc, news, nil, time.Second)

	bundle := a.Gather(context.Background(), "The sky is green", "en", "fast")

	require.Len(t, bundle.Evidence, 1)
	assert.Equal(t, "False", bundle.Evidence[0].Snippet)
	require.Len(t, bundle.FactCheckRecords, 1)
	assert.Equal(t, "Example Checker", bundle.FactCheckRecords[0].Publisher)
	require.Len(t, bundle.Citations, 1)
	assert.Equal(t, "https://factcheck.example/sky-green", bundle.Citations[0].URL)
	assert.Len(t, bundle.RawClaims, 1)

	assert.Zero(t, atomic.LoadInt32(newsHits), "news fallback must not run when the index has results")
}

func TestGatherFallsBackToNewsExactlyOnce(t *testing.T) {
	fc, news, fcHits, newsHits := newServers(t, `{"claims": []}`, newsJSON)
	a := NewAggregator(fc, news, nil, time.Second)

	bundle := a.Gather(context.Background(), "Obscure local claim", "en", "fast")

	require.Len(t, bundle.Evidence, 2)
	assert.Equal(t, "Why the sky is blue", bundle.Evidence[0].Snippet)
	assert.Equal(t, "Rayleigh scattering", bundle.Evidence[1].Snippet)
	assert.Equal(t, "https://news.example/optics", bundle.Evidence[1].URL)

	// Without fact-check hits, citations mirror the news results.
	require.Len(t, bundle.Citations, 2)
	assert.Equal(t, "Sky color explained", bundle.Citations[0].Title)
	assert.Empty(t, bundle.FactCheckRecords)

	assert.Equal(t, int32(1), atomic.LoadInt32(fcHits))
	assert.Equal(t, int32(1), atomic.LoadInt32(newsHits))
}

func TestGatherSwallowsUpstreamFailures(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(failing.Close)

	fc := NewFactCheckClient(failing.URL, "test-key")
	news := NewNewsClient(failing.URL, "")
	a := NewAggregator(fc, news, nil, time.Second)

	bundle := a.Gather(context.Background(), "anything", "en", "fast")

	assert.Empty(t, bundle.Evidence)
	assert.Empty(t, bundle.Citations)
	assert.Empty(t, bundle.FactCheckRecords)
}

func TestGatherCapsEvidenceAtFive(t *testing.T) {
	reviews := ""
	for i := 0; i < 8; i++ {
		if i > 0 {
			reviews += ","
		}
		reviews += fmt.Sprintf(`{"title": "Review %d", "url": "https://fc.example/%d", "publisher": {"name": "Checker"}, "textualRating": "False"}`, i, i)
	}
	body := fmt.Sprintf(`{"claims": [{"text": "big claim", "claimReview": [%s]}]}`, reviews)

	fc, news, _, _ := newServers(t, body, newsJSON)
	a := NewAggregator(fc, news, nil, time.Second)

	bundle := a.Gather(context.Background(), "big claim", "en", "fast")

	assert.Len(t, bundle.Evidence, 5)
	assert.Len(t, bundle.FactCheckRecords, 5)
	assert.Len(t, bundle.Citations, 5)
}

func TestGatherMissingAPIKeyMeansZeroHits(t *testing.T) {
	_, news, _, newsHits := newServers(t, claimsJSON, newsJSON)
	fc := NewFactCheckClient("https://unreachable.invalid", "")
	a := NewAggregator(fc, news, nil, time.Second)

	bundle := a.Gather(context.Background(), "anything", "en", "fast")

	assert.Equal(t, int32(1), atomic.LoadInt32(newsHits))
	assert.Len(t, bundle.Evidence, 2)
}
