package llm

import "strings"

// modelPricing holds USD cost per million tokens.
type modelPricing struct {
	inputPerMTok  float64
	outputPerMTok float64
}

// Prices current as of mid-2026; unknown models cost zero.
var pricingTable = map[string]modelPricing{
	"gemini-2.5-flash-lite": {inputPerMTok: 0.10, outputPerMTok: 0.40},
	"gemini-2.0-flash":      {inputPerMTok: 0.10, outputPerMTok: 0.40},
	"gemini-2.5-flash":      {inputPerMTok: 0.30, outputPerMTok: 2.50},
	"claude-haiku-4-5":      {inputPerMTok: 1.00, outputPerMTok: 5.00},
	"claude-sonnet-4-5":     {inputPerMTok: 3.00, outputPerMTok: 15.00},
	"gpt-4o-mini":           {inputPerMTok: 0.15, outputPerMTok: 0.60},
	"gpt-4.1-mini":          {inputPerMTok: 0.40, outputPerMTok: 1.60},
}

// EstimateCost returns the approximate USD cost of one generation.
// Dated model IDs (claude-haiku-4-5-20251001) match their base entry.
func EstimateCost(model string, usage Usage) float64 {
	p, ok := pricingTable[model]
	if !ok {
		for base, candidate := range pricingTable {
			if strings.HasPrefix(model, base) {
				p = candidate
				ok = true
				break
			}
		}
	}
	if !ok {
		return 0
	}

	in := float64(usage.InputTokens) / 1e6 * p.inputPerMTok
	out := float64(usage.OutputTokens) / 1e6 * p.outputPerMTok
	return in + out
}
