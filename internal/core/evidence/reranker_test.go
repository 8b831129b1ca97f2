package evidence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pramana/truthlens/internal/core/model"
)

type MockLLM struct {
	Response string
	Err      error
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return m.Response, m.Err
}

func (m *MockLLM) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	return m.Response, m.Err
}

func rankItems() []model.EvidenceItem {
	return []model.EvidenceItem{
		{Title: "A"},
		{Title: "B"},
		{Title: "C"},
	}
}

func TestRankReorders(t *testing.T) {
	r := NewReranker(&MockLLM{Response: "2, 0, 1"})

	ranked := r.Rank(context.Background(), "claim", rankItems())

	assert.Equal(t, "C", ranked[0].Title)
	assert.Equal(t, "A", ranked[1].Title)
	assert.Equal(t, "B", ranked[2].Title)
}

func TestRankModelFailureKeepsOrder(t *testing.T) {
	r := NewReranker(&MockLLM{Err: errors.New("unavailable")})

	ranked := r.Rank(context.Background(), "claim", rankItems())

	assert.Equal(t, rankItems(), ranked)
}

func TestRankPartialOutputAppendsRest(t *testing.T) {
	r := NewReranker(&MockLLM{Response: "1"})

	ranked := r.Rank(context.Background(), "claim", rankItems())

	assert.Equal(t, []string{"B", "A", "C"}, []string{ranked[0].Title, ranked[1].Title, ranked[2].Title})
}

func TestRankIgnoresOutOfRangeIndices(t *testing.T) {
	r := NewReranker(&MockLLM{Response: "7, 1, 1, 0, 2"})

	ranked := r.Rank(context.Background(), "claim", rankItems())

	assert.Len(t, ranked, 3)
	assert.Equal(t, "B", ranked[0].Title)
}

func TestRankSingleItemShortCircuits(t *testing.T) {
	r := NewReranker(&MockLLM{Response: "garbage"})

	items := []model.EvidenceItem{{Title: "only"}}
	assert.Equal(t, items, r.Rank(context.Background(), "claim", items))
}
