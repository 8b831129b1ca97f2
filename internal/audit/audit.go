package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Record is one verification request's audit entry. Claim text is truncated
// and the user identity reduced to a hash before it reaches any sink.
type Record struct {
	RequestID  string
	Text       string
	Language   string
	Mode       string
	Verdict    string
	Confidence float64
	LatencyMS  float64
	CostUSD    float64
	UserHash   string
	Timestamp  time.Time
}

// Sink receives audit records. Appends are best-effort and fire-and-forget
// from the pipeline's perspective.
type Sink interface {
	Append(ctx context.Context, rec Record) error
	Close()
}

const maxAuditText = 1000

// TruncateText bounds the claim text stored with a record.
func TruncateText(text string) string {
	if len(text) > maxAuditText {
		return text[:maxAuditText]
	}
	return text
}

// AnonymizeUser derives a short stable hash from the claim text, standing
// in for a user identifier the service does not collect.
func AnonymizeUser(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])[:16]
}
