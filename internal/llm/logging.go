package llm

import (
	"context"
	"io"
	"log"
	"time"
)

// LoggingProvider writes one line per request to a logger.
type LoggingProvider struct {
	inner  Provider
	logger *log.Logger
}

// WithLogging wraps p. A nil logger discards output.
func WithLogging(p Provider, logger *log.Logger) Provider {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	elapsed := time.Since(start).Round(time.Millisecond)

	purpose := PurposeFrom(ctx)
	schema := "-"
	if req.Schema != nil {
		schema = req.Schema.Name
	}
	if err != nil {
		l.logger.Printf("llm purpose=%s model=%s schema=%s latency=%s error=%q",
			purpose, l.inner.ModelID(), schema, elapsed, err.Error())
		return nil, err
	}

	cost := 0.0
	if c := LookupCost(resp.Model); c != nil {
		cost = c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}
	l.logger.Printf("llm purpose=%s model=%s schema=%s latency=%s tokens_in=%d tokens_out=%d cost_usd=%.6f",
		purpose, resp.Model, schema, elapsed, resp.Usage.InputTokens, resp.Usage.OutputTokens, cost)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }
