package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/cache"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lectern",
	Short: "Turn YouTube lectures into study notes and quizzes",
	Long: `Lectern fetches a video transcript, synthesizes structured study notes,
builds a multiple-choice question bank, and quizzes you on it in the
terminal, tracking which topics need review.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LECTERN_DB env var)")
	rootCmd.PersistentFlags().String("cache-dir", "", "Session cache directory (overrides LECTERN_CACHE_DIR env var)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LECTERN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openCache builds the session cache honoring the --cache-dir flag.
func openCache(cmd *cobra.Command) (*cache.Cache, error) {
	dir, _ := cmd.Flags().GetString("cache-dir")
	if dir == "" {
		var err error
		dir, err = cache.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
	}
	return cache.New(dir)
}
