package claim

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
)

type visionReply struct {
	text string
	err  error
}

type MockLLM struct {
	Response      string
	Err           error
	VisionReplies []visionReply

	GenerateCalls int
	VisionCalls   int
	LastPrompt    string
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.GenerateCalls++
	m.LastPrompt = prompt
	return m.Response, m.Err
}

func (m *MockLLM) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	m.VisionCalls++
	m.LastPrompt = prompt
	if len(m.VisionReplies) > 0 {
		reply := m.VisionReplies[0]
		m.VisionReplies = m.VisionReplies[1:]
		return reply.text, reply.err
	}
	return m.Response, m.Err
}

// testPNG returns a small valid PNG so the grayscale step succeeds.
func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		img.Set(x, 4, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}
