package cmd

import (
	"github.com/pinagook/pinagook/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pinagook",
	Short: "Interactive language courses in your terminal",
	Long:  "Pinagook is a terminal course player: step-by-step lessons with instant feedback and resumable progress.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PINAGOOK_DB env var)")
	rootCmd.PersistentFlags().String("courses", "", "Path to the courses directory (overrides PINAGOOK_COURSES env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PINAGOOK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
