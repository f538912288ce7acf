package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/transcript"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage cached sessions",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached video sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCache(cmd)
		if err != nil {
			return err
		}

		ids, err := c.List()
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Println("No cached sessions.")
			return nil
		}

		for _, id := range ids {
			entry, err := c.Load(id)
			if err != nil {
				fmt.Printf("%s  (unreadable: %v)\n", id, err)
				continue
			}
			fmt.Printf("%s  %s  %d questions, %d topics\n",
				id, entry.Timestamp.Format("2006-01-02"),
				len(entry.Questions), len(entry.Notes.Topics))
		}
		return nil
	},
}

var cacheShowCmd = &cobra.Command{
	Use:   "show <youtube-url-or-id>",
	Short: "Show details of one cached session",
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
			return err
		}

		fmt.Printf("Video:      %s\n", entry.VideoID)
		if entry.Title != "" {
			fmt.Printf("Title:      %s\n", entry.Title)
		}
		if entry.Author != "" {
			fmt.Printf("Channel:    %s\n", entry.Author)
		}
		fmt.Printf("Generated:  %s\n", entry.Timestamp.Format("2006-01-02 15:04"))
		fmt.Printf("Transcript: %d chars\n", len(entry.Transcript))
		fmt.Printf("Questions:  %d\n", len(entry.Questions))
		fmt.Println("Topics:")
		for _, t := range entry.Notes.Topics {
			fmt.Printf("  - %s: %s\n", t.Name, t.Description)
		}
		return nil
	},
}

var cacheRemoveCmd = &cobra.Command{
	Use:   "remove <youtube-url-or-id>",
	Short: "Delete a cached session",
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

		if err := c.Remove(videoID); err != nil {
			return fmt.Errorf("remove cached session: %w", err)
		}
		fmt.Printf("Removed cached session for %s\n", videoID)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheShowCmd)
	cacheCmd.AddCommand(cacheRemoveCmd)
}
