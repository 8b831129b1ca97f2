package llm

import (
	"context"
	"errors"
	"strings"
)

// ErrUnsupportedMedia signals that the provider rejected the supplied image
// itself, as opposed to a generic call failure. Callers surface it as a bad
// input, not an upstream fault.
var ErrUnsupportedMedia = errors.New("unsupported media type")

type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// GenerateVision sends the prompt together with one inline image.
	GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

var supportedImageMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/heic": true,
}

func checkImageMIME(mimeType string) error {
	if !supportedImageMIME[strings.ToLower(mimeType)] {
		return ErrUnsupportedMedia
	}
	return nil
}

// mediaRejected sniffs provider error text for an image-content rejection so
// it can be folded into ErrUnsupportedMedia. Providers do not expose a typed
// error for this case.
func mediaRejected(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unsupported image") ||
		strings.Contains(msg, "invalid image") ||
		strings.Contains(msg, "unsupported media") ||
		strings.Contains(msg, "could not process image")
}
