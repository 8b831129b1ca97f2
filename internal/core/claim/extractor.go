package claim

import (
	"bytes"
	"context"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/pramana/truthlens/internal/llm"
)

const defaultOCRPrompt = `Extract every piece of readable text from this image, exactly as written.
Reply with only the extracted text. If the image contains no readable text, reply with exactly: NO_TEXT`

// noTextMarker is what the model is told to answer when nothing is readable.
const noTextMarker = "NO_TEXT"

// Extractor recovers text from an image via the vision model. OCR is
// advisory: every failure, from a corrupt image to a model error, yields an
// empty string and never propagates.
type Extractor struct {
	LLM    llm.Client
	Prompt string
}

func NewExtractor(client llm.Client, prompt string) *Extractor {
	if prompt == "" {
		prompt = defaultOCRPrompt
	}
	return &Extractor{LLM: client, Prompt: prompt}
}

func (e *Extractor) Extract(ctx context.Context, img []byte, mimeType string) string {
	gray, grayMIME, err := grayscale(img)
	if err != nil {
		slog.Debug("ocr: image decode failed", "error", err)
		return ""
	}

	out, err := e.LLM.GenerateVision(ctx, e.Prompt, gray, grayMIME)
	if err != nil {
		slog.Debug("ocr: extraction failed", "error", err)
		return ""
	}

	out = strings.TrimSpace(out)
	if out == noTextMarker {
		return ""
	}
	return out
}

// grayscale decodes the image, flattens it to 8-bit gray and re-encodes as
// PNG. Text recognition works on luminance; dropping color also shrinks the
// payload sent to the model.
func grayscale(data []byte) ([]byte, string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}

	bounds := src.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, src, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "image/png", nil
}
