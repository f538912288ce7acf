package llm

import (
	"context"
	"time"
)

// Event is one recorded generation attempt.
type Event struct {
	Model        string
	Purpose      string
	DurationMS   int64
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	Error        string
	CreatedAt    time.Time
}

// EventSink receives generation events. Sinks must not block for long;
// recording happens inline on the request path.
type EventSink interface {
	RecordEvent(ctx context.Context, ev Event) error
}

// LoggingProvider decorates a Provider, recording an Event per call.
// Sink failures are swallowed so telemetry never breaks generation.
type LoggingProvider struct {
	inner Provider
	sink  EventSink
}

// WithLogging wraps a provider with event recording.
func WithLogging(inner Provider, sink EventSink) *LoggingProvider {
	return &LoggingProvider{inner: inner, sink: sink}
}

func (p *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := p.inner.Generate(ctx, req)

	ev := Event{
		Purpose:    PurposeFrom(ctx),
		DurationMS: time.Since(start).Milliseconds(),
		CreatedAt:  start,
	}

	if err != nil {
		ev.Model = p.inner.ModelID()
		ev.Error = err.Error()
	} else {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.CostUSD = EstimateCost(resp.Model, resp.Usage)
	}

	// Recording uses a fresh context so a cancelled request still logs.
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	_ = p.sink.RecordEvent(recordCtx, ev)

	return resp, err
}

func (p *LoggingProvider) ModelID() string {
	return p.inner.ModelID()
}
