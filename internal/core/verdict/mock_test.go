package verdict

import "context"

type MockLLM struct {
	Response  string
	Err       error
	VisionErr error

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
	if m.VisionErr != nil {
		return "", m.VisionErr
	}
	return m.Response, m.Err
}
