package core

import "context"

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
