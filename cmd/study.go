package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/cache"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/llm"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/notes"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/questionbank"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/store"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/transcript"
)

var studyCmd = &cobra.Command{
	Use:   "study <youtube-url-or-id>",
	Short: "Generate notes and a question bank for a video",
	Long: `Fetches the transcript, synthesizes study notes, and generates a
multiple-choice question bank. Results are cached per video; a second
run reuses the cache unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		videoID, err := transcript.ExtractVideoID(args[0])
		if err != nil {
			return err
		}

		c, err := openCache(cmd)
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if c.Exists(videoID) && !force {
			fmt.Printf("Found cached session for %s. Use --force to regenerate, or run:\n", videoID)
			fmt.Printf("  lectern play %s\n", videoID)
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := buildProvider(ctx, st)
		if err != nil {
			return err
		}

		entry, err := runPipeline(ctx, cmd, provider, videoID)
		if err != nil {
			return err
		}

		if err := c.Save(entry); err != nil {
			return fmt.Errorf("cache session: %w", err)
		}

		fmt.Printf("\nDone. Generated %d questions across %d topics.\n",
			len(entry.Questions), len(entry.Notes.Topics))
		fmt.Printf("View notes:  lectern notes %s\n", videoID)
		fmt.Printf("Take a quiz: lectern play %s\n", videoID)
		return nil
	},
}

func init() {
	studyCmd.Flags().Bool("force", false, "Regenerate even if a cached session exists")
	studyCmd.Flags().Int("questions", 50, "Total questions to generate")
	studyCmd.Flags().Int("easy", 0, "Easy question count (overrides the even split)")
	studyCmd.Flags().Int("medium", 0, "Medium question count (overrides the even split)")
	studyCmd.Flags().Int("hard", 0, "Hard question count (overrides the even split)")
	studyCmd.Flags().String("transcript-file", "", "Read the transcript from a local file instead of YouTube")
}

func runPipeline(ctx context.Context, cmd *cobra.Command, provider llm.Provider, videoID string) (*cache.Entry, error) {
	yt := transcript.NewYouTubeProvider()
	var source transcript.Provider = yt
	if path, _ := cmd.Flags().GetString("transcript-file"); path != "" {
		source = transcript.NewFileProvider(path)
	}

	fmt.Printf("Fetching transcript for %s...\n", videoID)
	text, err := source.Fetch(ctx, videoID)
	if err != nil {
		return nil, describeTranscriptError(err)
	}

	// Title and author are cosmetic, so a metadata failure never stops
	// the pipeline.
	var title, author string
	if meta, err := yt.FetchMetadata(ctx, videoID); err == nil {
		title, author = meta.Title, meta.Author
		fmt.Printf("Video: %s (%s)\n", title, author)
	}

	fmt.Println("Synthesizing notes...")
	synth := notes.NewSynthesizer(provider, notes.DefaultConfig())
	studyNotes, notesUsage, err := synth.Synthesize(ctx, text)
	if err != nil {
		var malformed *notes.MalformedNotesError
		if errors.As(err, &malformed) {
			fmt.Println("Model response could not be parsed; raw output follows:")
			fmt.Println(malformed.Raw)
		}
		return nil, err
	}

	counts := questionCounts(cmd)
	total := 0
	for _, n := range counts {
		total += n
	}
	fmt.Printf("Generating %d questions...\n", total)
	builder := questionbank.NewBuilder(provider, questionbank.DefaultConfig(), nil)
	result, err := builder.BuildMix(ctx, studyNotes, counts)
	if err != nil {
		return nil, err
	}

	usage := notesUsage
	usage.Add(result.Usage)
	fmt.Printf("Tokens used: %d in, %d out.\n", usage.InputTokens, usage.OutputTokens)

	return &cache.Entry{
		VideoID:    videoID,
		Title:      title,
		Author:     author,
		Transcript: text,
		Notes:      studyNotes,
		Questions:  result.Questions,
	}, nil
}

// questionCounts resolves the per-tier counts: explicit --easy/--medium/
// --hard values win; anything left unset comes from the even split of
// --questions.
func questionCounts(cmd *cobra.Command) map[questionbank.Difficulty]int {
	total, _ := cmd.Flags().GetInt("questions")
	counts := questionbank.SplitCounts(total)

	for tier, flag := range map[questionbank.Difficulty]string{
		questionbank.Easy:   "easy",
		questionbank.Medium: "medium",
		questionbank.Hard:   "hard",
	} {
		if cmd.Flags().Changed(flag) {
			counts[tier], _ = cmd.Flags().GetInt(flag)
		}
	}
	return counts
}

func describeTranscriptError(err error) error {
	switch {
	case errors.Is(err, transcript.ErrCaptionsDisabled):
		return fmt.Errorf("this video has no captions, so no transcript is available: %w", err)
	case errors.Is(err, transcript.ErrNotFound):
		return fmt.Errorf("video not found; check the URL: %w", err)
	default:
		return err
	}
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func buildProvider(ctx context.Context, st *store.Store) (llm.Provider, error) {
	cfg, err := llm.DiscoverConfig()
	if err != nil {
		return nil, err
	}
	return llm.NewChain(ctx, cfg, st.EventRepo())
}
