package llm

import (
	"context"
	"fmt"
)

// NewChain builds the fallback chain described by cfg, one provider per
// model in order. An optional sink adds event recording around the chain.
func NewChain(ctx context.Context, cfg Config, sink EventSink) (Provider, error) {
	if len(cfg.Models) == 0 {
		return nil, fmt.Errorf("no models configured")
	}

	providers := make([]Provider, 0, len(cfg.Models))
	for _, model := range cfg.Models {
		p, err := newProvider(ctx, cfg, model)
		if err != nil {
			return nil, err
		}
		if sink != nil {
			providers = append(providers, WithLogging(p, sink))
		} else {
			providers = append(providers, p)
		}
	}

	return NewFallbackChain(DefaultChainConfig(), providers...), nil
}

func newProvider(ctx context.Context, cfg Config, model string) (Provider, error) {
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiProvider(ctx, cfg.APIKey, model)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, model)
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, model, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
