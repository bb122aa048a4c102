package cmd

import (
	"fmt"

	"github.com/pinagook/pinagook/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lesson completion statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		events := st.EventRepo()

		stats, err := events.LessonStats(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No finished lessons yet.")
			return nil
		}

		fmt.Printf("%-24s %-24s %8s %6s %6s %9s\n",
			"COURSE", "LESSON", "FINISHES", "BEST", "LAST", "ACCURACY")
		for _, s := range stats {
			accuracy, err := events.AnswerAccuracy(ctx, s.CourseID, s.LessonID)
			if err != nil {
				return fmt.Errorf("load accuracy: %w", err)
			}
			fmt.Printf("%-24s %-24s %8d %5d%% %5d%% %8.0f%%\n",
				s.CourseID, s.LessonID, s.Finishes, s.BestPercent, s.LastPercent, accuracy*100)
		}
		return nil
	},
}
