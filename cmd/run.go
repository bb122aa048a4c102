package cmd

import (
	"fmt"

	"github.com/pinagook/pinagook/internal/app"
	"github.com/pinagook/pinagook/internal/content"
	"github.com/pinagook/pinagook/internal/progress"
	"github.com/pinagook/pinagook/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads the course library, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	library, err := loadLibrary(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		Library:  library,
		Progress: progress.NewService(st.ProgressRepo()),
		Events:   st.EventRepo(),
	})
}

// loadLibrary reads course files from --courses, PINAGOOK_COURSES, or
// the default data dir, plus the embedded demo course.
func loadLibrary(cmd *cobra.Command) (*content.Library, error) {
	dir, _ := cmd.Flags().GetString("courses")
	if dir == "" {
		var err error
		dir, err = content.DefaultCoursesDir()
		if err != nil {
			return nil, fmt.Errorf("resolve courses dir: %w", err)
		}
	}

	library, err := content.LoadLibrary(dir)
	if err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}
	return library, nil
}
