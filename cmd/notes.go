package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/export"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/notes"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/transcript"
)

var notesCmd = &cobra.Command{
	Use:   "notes <youtube-url-or-id>",
	Short: "Show or export the study notes for a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		outPath, _ := cmd.Flags().GetString("export")
		if outPath == "" {
			fmt.Print(notes.FormatMarkdown(entry.Notes))
			return nil
		}

		withQuestions, _ := cmd.Flags().GetBool("with-questions")
		withAnswers, _ := cmd.Flags().GetBool("answers")

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()

		opts := export.Options{
			IncludeQuestions: withQuestions,
			IncludeAnswers:   withAnswers,
		}
		if err := export.StudyGuide(f, entry, opts); err != nil {
			return err
		}

		fmt.Printf("Exported study guide to %s\n", outPath)
		return nil
	},
}

func init() {
	notesCmd.Flags().String("export", "", "Write a markdown study guide to this path")
	notesCmd.Flags().Bool("with-questions", false, "Include the question bank in the export")
	notesCmd.Flags().Bool("answers", false, "Include the answer key in the export")
}
