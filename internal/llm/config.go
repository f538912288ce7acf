package llm

import (
	"fmt"
	"os"
	"strings"
)

// ProviderKind selects which SDK backs the chain.
type ProviderKind string

const (
	ProviderGemini    ProviderKind = "gemini"
	ProviderAnthropic ProviderKind = "anthropic"
	ProviderOpenAI    ProviderKind = "openai"
)

// DefaultModels is the standard fallback chain: a cheap fast model first,
// a slightly larger one as backup.
var DefaultModels = []string{"gemini-2.5-flash-lite", "gemini-2.0-flash"}

// Config holds provider selection and credentials.
type Config struct {
	Provider ProviderKind
	APIKey   string
	Models   []string
	// BaseURL overrides the API endpoint (OpenAI-compatible servers).
	BaseURL string
}

// DiscoverConfig reads provider settings from the environment.
//
//	LECTERN_PROVIDER   gemini (default), anthropic, or openai
//	LECTERN_MODELS     comma-separated fallback chain
//	LECTERN_BASE_URL   endpoint override for openai-compatible APIs
//	LECTERN_API_KEY    explicit key; falls back to the provider's
//	                   conventional variable (GEMINI_API_KEY etc.)
func DiscoverConfig() (Config, error) {
	cfg := Config{
		Provider: ProviderKind(strings.ToLower(getenv("LECTERN_PROVIDER", string(ProviderGemini)))),
		BaseURL:  os.Getenv("LECTERN_BASE_URL"),
	}

	switch cfg.Provider {
	case ProviderGemini, ProviderAnthropic, ProviderOpenAI:
	default:
		return Config{}, fmt.Errorf("unknown provider %q (want gemini, anthropic, or openai)", cfg.Provider)
	}

	cfg.APIKey = os.Getenv("LECTERN_API_KEY")
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(conventionalKeyVar(cfg.Provider))
	}
	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("no API key: set LECTERN_API_KEY or %s", conventionalKeyVar(cfg.Provider))
	}

	if models := os.Getenv("LECTERN_MODELS"); models != "" {
		for _, m := range strings.Split(models, ",") {
			if m = strings.TrimSpace(m); m != "" {
				cfg.Models = append(cfg.Models, m)
			}
		}
	}
	if len(cfg.Models) == 0 {
		cfg.Models = defaultModelsFor(cfg.Provider)
	}

	return cfg, nil
}

func conventionalKeyVar(kind ProviderKind) string {
	switch kind {
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	default:
		return "GEMINI_API_KEY"
	}
}

func defaultModelsFor(kind ProviderKind) []string {
	switch kind {
	case ProviderAnthropic:
		return []string{"claude-haiku-4-5"}
	case ProviderOpenAI:
		return []string{"gpt-4o-mini"}
	default:
		return append([]string(nil), DefaultModels...)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
