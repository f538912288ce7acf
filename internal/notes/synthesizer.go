package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/llm"
)

// Config tunes the synthesis request.
type Config struct {
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns the standard synthesis settings. Low temperature
// keeps the notes faithful to the transcript.
func DefaultConfig() Config {
	return Config{
		Temperature: 0.3,
		MaxTokens:   4000,
	}
}

// Synthesizer turns transcripts into StudyNotes via a text-generation model.
type Synthesizer struct {
	provider llm.Provider
	config   Config
}

// NewSynthesizer creates a Synthesizer backed by the given provider.
func NewSynthesizer(provider llm.Provider, cfg Config) *Synthesizer {
	if cfg.MaxTokens == 0 {
		cfg = DefaultConfig()
	}
	return &Synthesizer{provider: provider, config: cfg}
}

// Synthesize generates structured notes from a transcript, reporting
// token usage alongside.
//
// Transcripts under MinTranscriptChars fail fast with ErrTranscriptTooShort
// before any model call. Responses that cannot be decoded come back as
// *MalformedNotesError with the raw text preserved.
func (s *Synthesizer) Synthesize(ctx context.Context, transcript string) (*StudyNotes, llm.Usage, error) {
	if len(transcript) < MinTranscriptChars {
		return nil, llm.Usage{}, ErrTranscriptTooShort
	}

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "notes"), llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(transcript)},
		},
		Schema:      NotesSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) {
			return nil, llm.Usage{}, &MalformedNotesError{Raw: string(invalid.Content), Err: invalid.Err}
		}
		return nil, llm.Usage{}, fmt.Errorf("generate notes: %w", err)
	}

	var parsed StudyNotes
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, resp.Usage, &MalformedNotesError{Raw: string(resp.Content), Err: err}
	}

	return &parsed, resp.Usage, nil
}
