package cmd

import (
	"fmt"

	"github.com/pinagook/pinagook/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset [course-id]",
	Short: "Delete saved lesson progress",
	Long:  "Delete saved lesson progress, for one course or for everything. Play history events are kept.",
	Args:  cobra.MaximumNArgs(1),
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

		courseID := ""
		if len(args) == 1 {
			courseID = args[0]
		}

		n, err := st.ProgressRepo().RemoveAll(cmd.Context(), courseID)
		if err != nil {
			return fmt.Errorf("delete progress: %w", err)
		}

		if courseID == "" {
			fmt.Printf("Deleted %d saved lesson(s).\n", n)
		} else {
			fmt.Printf("Deleted %d saved lesson(s) for course %s.\n", n, courseID)
		}
		return nil
	},
}
