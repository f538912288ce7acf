package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// ChainConfig controls retry behavior within the model fallback chain.
type ChainConfig struct {
	// MaxAttempts is the per-model attempt budget for transient errors.
	MaxAttempts int

	// BaseWait seeds the exponential backoff for transient errors.
	// Attempt n waits BaseWait << n: 2s, 4s, 8s with the default.
	BaseWait time.Duration

	// OtherWait is the fixed delay before the single retry granted to
	// unclassified errors.
	OtherWait time.Duration
}

// DefaultChainConfig returns the standard chain retry settings.
func DefaultChainConfig() ChainConfig {
	return ChainConfig{
		MaxAttempts: 3,
		BaseWait:    2 * time.Second,
		OtherWait:   2 * time.Second,
	}
}

// FallbackChain is a Provider that tries an ordered list of models until
// one succeeds. Text-generation services have unpredictable availability;
// the chain trades latency (sequential, blocking retries) for availability.
//
// Per model: transient errors (rate limit, service unavailable) retry with
// exponential backoff up to MaxAttempts before advancing to the next model;
// a missing model advances immediately; any other error gets exactly one
// retry after a fixed delay and then propagates as-is. Only when every
// model is exhausted does Generate fail with *ErrExhausted.
type FallbackChain struct {
	providers []Provider
	config    ChainConfig
}

// NewFallbackChain builds a chain over the given providers, tried in order.
func NewFallbackChain(cfg ChainConfig, providers ...Provider) *FallbackChain {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultChainConfig().MaxAttempts
	}
	return &FallbackChain{providers: providers, config: cfg}
}

func (c *FallbackChain) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for _, p := range c.providers {
		resp, err := c.tryModel(ctx, p, req)
		if err == nil {
			return resp, nil
		}
		var adv *advanceError
		if !errors.As(err, &adv) {
			// Terminal: context cancellation or a recurring
			// unclassified error propagates immediately.
			return nil, err
		}
		lastErr = adv.inner
	}

	return nil, &ErrExhausted{Models: c.modelIDs(), Err: lastErr}
}

// advanceError wraps a model's final error to signal "move to the next model".
type advanceError struct {
	inner error
}

func (e *advanceError) Error() string { return fmt.Sprintf("advancing past model: %v", e.inner) }
func (e *advanceError) Unwrap() error { return e.inner }

func advance(err error) error {
	return &advanceError{inner: err}
}

// tryModel runs the retry loop for a single model. A nil error means
// success; an errAdvance-wrapped error means try the next model; any other
// error is terminal for the whole chain.
func (c *FallbackChain) tryModel(ctx context.Context, p Provider, req Request) (*Response, error) {
	otherRetried := false

	for attempt := 0; attempt < c.config.MaxAttempts; {
		resp, err := p.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		var notFound *ErrModelNotFound
		if errors.As(err, &notFound) {
			// No point retrying a model that doesn't exist.
			return nil, advance(err)
		}

		if isTransient(err) {
			attempt++
			if attempt >= c.config.MaxAttempts {
				fmt.Fprintf(os.Stderr, "model %s failed after %d attempts, trying next model\n",
					p.ModelID(), c.config.MaxAttempts)
				return nil, advance(err)
			}
			wait := c.backoff(err, attempt)
			fmt.Fprintf(os.Stderr, "model %s busy, retrying in %s (attempt %d/%d)\n",
				p.ModelID(), wait, attempt+1, c.config.MaxAttempts)
			if serr := sleep(ctx, wait); serr != nil {
				return nil, serr
			}
			continue
		}

		// Unclassified errors get one retry; a recurrence propagates
		// immediately rather than silently burning the budget.
		if otherRetried {
			return nil, err
		}
		otherRetried = true
		if serr := sleep(ctx, c.config.OtherWait); serr != nil {
			return nil, serr
		}
	}

	return nil, advance(errors.New("attempt budget exhausted"))
}

// backoff computes the transient-error wait for the given attempt count,
// honoring a server-provided Retry-After when present.
func (c *FallbackChain) backoff(err error, attempt int) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	return c.config.BaseWait << (attempt - 1)
}

func isTransient(err error) bool {
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var unavail *ErrProviderUnavailable
	return errors.As(err, &unavail)
}

func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// ModelID returns the chain's model list joined with commas.
func (c *FallbackChain) ModelID() string {
	return strings.Join(c.modelIDs(), ",")
}

func (c *FallbackChain) modelIDs() []string {
	ids := make([]string, len(c.providers))
	for i, p := range c.providers {
		ids[i] = p.ModelID()
	}
	return ids
}
