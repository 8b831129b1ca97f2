package model

// Request carries one verification request through the pipeline.
// At least one of Text or Image must ultimately yield claim text.
type Request struct {
	Text      string
	Language  string // "en", "hi", "ta" or "auto"
	Mode      string // "fast" or "deep"
	Image     []byte
	ImageMIME string
}

func (r Request) HasImage() bool {
	return len(r.Image) > 0
}
