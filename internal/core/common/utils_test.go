package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type verdictShape struct {
	Verdict    string  `json:"verdict"`
	Confidence float64 `json:"confidence"`
}

func TestParseJSONPlain(t *testing.T) {
	result, err := ParseJSON[verdictShape](`{"verdict": "false", "confidence": 0.9}`)

	assert.NoError(t, err)
	assert.Equal(t, "false", result.Verdict)
	assert.Equal(t, 0.9, result.Confidence)
}

func TestParseJSONFenced(t *testing.T) {
	fenced := "```json\n{\"verdict\": \"true\", \"confidence\": 0.8}\n```"
	plain := `{"verdict": "true", "confidence": 0.8}`

	fromFenced, err := ParseJSON[verdictShape](fenced)
	assert.NoError(t, err)

	fromPlain, err := ParseJSON[verdictShape](plain)
	assert.NoError(t, err)

	assert.Equal(t, fromPlain, fromFenced)
}

func TestParseJSONFencedNoLanguageTag(t *testing.T) {
	result, err := ParseJSON[verdictShape]("```\n{\"verdict\": \"misleading\"}\n```")

	assert.NoError(t, err)
	assert.Equal(t, "misleading", result.Verdict)
}

func TestParseJSONSurroundingProse(t *testing.T) {
	response := `Here is my analysis:
{"verdict": "unverified", "confidence": 0.5}
Let me know if you need more detail.`

	result, err := ParseJSON[verdictShape](response)

	assert.NoError(t, err)
	assert.Equal(t, "unverified", result.Verdict)
}

func TestParseJSONNoObject(t *testing.T) {
	_, err := ParseJSON[verdictShape]("I cannot answer that.")
	assert.Error(t, err)
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON[verdictShape](`{"verdict": `)
	assert.Error(t, err)
}

func TestStripFencesPassThrough(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences(`{"a":1}`))
}
