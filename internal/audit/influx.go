package audit

import (
	"context"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// InfluxSink writes one point per verification request to an InfluxDB
// bucket for offline analytics.
type InfluxSink struct {
	client influxdb2.Client
	write  api.WriteAPIBlocking
}

func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	client := influxdb2.NewClient(url, token)
	return &InfluxSink{
		client: client,
		write:  client.WriteAPIBlocking(org, bucket),
	}
}

func (s *InfluxSink) Append(ctx context.Context, rec Record) error {
	point := influxdb2.NewPoint(
		"verification_request",
		map[string]string{
			"language": rec.Language,
			"mode":     rec.Mode,
			"verdict":  rec.Verdict,
		},
		map[string]interface{}{
			"request_id": rec.RequestID,
			"text":       TruncateText(rec.Text),
			"confidence": rec.Confidence,
			"latency_ms": rec.LatencyMS,
			"cost_usd":   rec.CostUSD,
			"user_hash":  rec.UserHash,
		},
		rec.Timestamp,
	)
	return s.write.WritePoint(ctx, point)
}

func (s *InfluxSink) Close() {
	s.client.Close()
}
