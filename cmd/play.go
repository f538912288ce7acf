package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/performance"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/quiz"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/store"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/transcript"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <youtube-url-or-id>",
	Short: "Take a quiz on a studied video",
	Args:  cobra.ExactArgs(1),
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

		entry, err := c.Load(videoID)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("no session for %s; run `lectern study %s` first", videoID, videoID)
			}
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		topics, _ := cmd.Flags().GetStringSlice("topics")

		session, err := quiz.NewSession(nil, videoID, entry.Questions, count, topics)
		if err != nil {
			return err
		}

		final, err := tui.Run(session)
		if err != nil {
			return err
		}
		if final.Aborted() || len(session.Answers) == 0 {
			fmt.Println("Quiz abandoned; nothing recorded.")
			return nil
		}

		correct, total, pct := session.Score()
		stats := performance.Aggregate(session.Answers)

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		result := &store.QuizResult{
			SessionID:  session.ID,
			VideoID:    videoID,
			Correct:    correct,
			Total:      total,
			Percentage: pct,
			TopicStats: stats,
		}
		if err := st.ResultRepo().Save(ctx, result); err != nil {
			return fmt.Errorf("save quiz result: %w", err)
		}

		fmt.Printf("Recorded: %d/%d (%.0f%%)\n", correct, total, pct)
		return nil
	},
}

func init() {
	playCmd.Flags().Int("count", quiz.DefaultSessionSize, "Questions per session")
	playCmd.Flags().StringSlice("topics", nil, "Limit the quiz to these topics")
}
