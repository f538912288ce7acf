package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/performance"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/store"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/transcript"
)

var statsCmd = &cobra.Command{
	Use:   "stats [youtube-url-or-id]",
	Short: "Show quiz history and model usage",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		var results []store.QuizResult
		if len(args) == 1 {
			videoID, err := transcript.ExtractVideoID(args[0])
			if err != nil {
				return err
			}
			results, err = st.ResultRepo().ByVideo(ctx, videoID)
			if err != nil {
				return err
			}
		} else {
			limit, _ := cmd.Flags().GetInt("limit")
			results, err = st.ResultRepo().Recent(ctx, limit)
			if err != nil {
				return err
			}
		}

		if len(results) == 0 {
			fmt.Println("No quiz results yet.")
		}

		for _, r := range results {
			fmt.Printf("%s  %s  %d/%d (%.0f%%)\n",
				r.CreatedAt.Format("2006-01-02 15:04"), r.VideoID,
				r.Correct, r.Total, r.Percentage)
			for _, s := range r.TopicStats {
				fmt.Printf("    %-28s %5s  %s\n", s.Topic, s.Score(), s.Status)
			}
			if weak := performance.WeakTopics(r.TopicStats, performance.WeakThreshold); len(weak) > 0 {
				fmt.Print("    review: ")
				for i, s := range weak {
					if i > 0 {
						fmt.Print(", ")
					}
					fmt.Print(s.Topic)
				}
				fmt.Println()
			}
		}

		showUsage, _ := cmd.Flags().GetBool("usage")
		if showUsage {
			sum, err := st.EventRepo().Summary(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("\nModel usage: %d calls (%d failed), %d in / %d out tokens, ~$%.4f\n",
				sum.Calls, sum.Errors, sum.InputTokens, sum.OutputTokens, sum.CostUSD)
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "How many recent results to show")
	statsCmd.Flags().Bool("usage", false, "Also show model token usage and cost")
}
