package model

// Verdict categories. The model may also answer "unknown" for claims it
// cannot place in time; callers treat it as the unverified-equivalent.
const (
	VerdictTrue       = "true"
	VerdictFalse      = "false"
	VerdictMisleading = "misleading"
	VerdictUnverified = "unverified"
	VerdictUnknown    = "unknown"
)

type Metrics struct {
	LatencyMS float64 `json:"latency_ms"`
	CostUSD   float64 `json:"cost_usd"`
}

// VerdictResult is the response contract for a verification request.
type VerdictResult struct {
	RequestID        string            `json:"request_id,omitempty"`
	Verdict          string            `json:"verdict"`
	Confidence       float64           `json:"confidence"`
	Explanation      string            `json:"explanation"`
	KeyFacts         []string          `json:"key_facts"`
	Citations        []Citation        `json:"citations"`
	FactCheckResults []FactCheckRecord `json:"fact_check_results"`
	Language         string            `json:"language"`
	Mode             string            `json:"mode"`
	Timestamp        string            `json:"timestamp"`
	Metrics          *Metrics          `json:"metrics,omitempty"`
}
