package language

import "unicode"

// Detect tags a snippet as "en", "hi" or "ta" by script membership:
// any Devanagari rune means Hindi, any Tamil rune means Tamil, everything
// else falls through to English. This is a prompt-selection heuristic,
// not linguistic detection, and it never fails.
func Detect(text string) string {
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Devanagari, r):
			return "hi"
		case unicode.Is(unicode.Tamil, r):
			return "ta"
		}
	}
	return "en"
}

// Supported reports whether tag is one of the pipeline's prompt languages.
func Supported(tag string) bool {
	return tag == "en" || tag == "hi" || tag == "ta"
}
