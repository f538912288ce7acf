package questionbank

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/llm"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/notes"
)

// Config tunes question generation.
type Config struct {
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns the standard generation settings. The higher
// temperature gives more varied questions than notes synthesis uses.
func DefaultConfig() Config {
	return Config{
		Temperature: 0.7,
		MaxTokens:   3000,
	}
}

// Builder generates question pools from study notes.
type Builder struct {
	provider llm.Provider
	config   Config
	rng      *rand.Rand
}

// NewBuilder creates a Builder. A nil rng gets a time-seeded one;
// tests inject a fixed seed for deterministic shuffles.
func NewBuilder(provider llm.Provider, cfg Config, rng *rand.Rand) *Builder {
	if cfg.MaxTokens == 0 {
		cfg = DefaultConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Builder{provider: provider, config: cfg, rng: rng}
}

// Result is the outcome of a Build run.
type Result struct {
	Questions []Question
	// TotalGenerated counts questions that survived validation, before
	// any later sampling.
	TotalGenerated int
	// Usage sums token consumption across the tier calls.
	Usage llm.Usage
}

// Build generates a pool of total questions split across difficulty
// tiers with SplitCounts.
func (b *Builder) Build(ctx context.Context, n *notes.StudyNotes, total int) (*Result, error) {
	return b.BuildMix(ctx, n, SplitCounts(total))
}

// BuildMix generates a pool with an explicit per-tier count. A tier
// whose generation fails contributes nothing rather than failing the
// whole pool; the build errors only when every tier came back empty.
// Invalid questions are dropped, off-notes topics are remapped to
// UncategorizedTopic, and the final pool is shuffled.
func (b *Builder) BuildMix(ctx context.Context, n *notes.StudyNotes, counts map[Difficulty]int) (*Result, error) {
	known := knownTopics(n)

	var pool []Question
	var usage llm.Usage
	var lastErr error

	for _, tier := range Tiers {
		count := counts[tier]
		if count <= 0 {
			continue
		}

		batch, tierUsage, err := b.generateTier(ctx, n, tier, count)
		usage.Add(tierUsage)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			fmt.Fprintf(os.Stderr, "generating %s questions failed: %v\n", tier, err)
			lastErr = err
			continue
		}

		for _, q := range batch {
			if q.Difficulty == "" {
				q.Difficulty = tier
			}
			if err := q.Validate(); err != nil {
				continue
			}
			if _, ok := known[q.Topic]; !ok {
				q.Topic = UncategorizedTopic
			}
			pool = append(pool, q)
		}
	}

	if len(pool) == 0 {
		if lastErr != nil {
			return nil, fmt.Errorf("question generation produced nothing: %w", lastErr)
		}
		return nil, fmt.Errorf("question generation produced nothing")
	}

	b.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return &Result{Questions: pool, TotalGenerated: len(pool), Usage: usage}, nil
}

// generateTier runs one model call and decodes the batch. A single
// object instead of an array is accepted as a one-element batch.
func (b *Builder) generateTier(ctx context.Context, n *notes.StudyNotes, tier Difficulty, count int) ([]Question, llm.Usage, error) {
	ctx = llm.WithPurpose(ctx, "questions:"+string(tier))

	resp, err := b.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(n, tier, count)},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   b.config.MaxTokens,
		Temperature: b.config.Temperature,
	})
	if err != nil {
		return nil, llm.Usage{}, err
	}

	batch, err := decodeBatch(resp.Content)
	return batch, resp.Usage, err
}

func decodeBatch(raw json.RawMessage) ([]Question, error) {
	var batch []Question
	if err := json.Unmarshal(raw, &batch); err == nil {
		return batch, nil
	}

	var single Question
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("decode question batch: %w", err)
	}
	return []Question{single}, nil
}

func knownTopics(n *notes.StudyNotes) map[string]struct{} {
	known := make(map[string]struct{}, len(n.Topics))
	for _, t := range n.Topics {
		known[t.Name] = struct{}{}
	}
	return known
}
