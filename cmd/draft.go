package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pinagook/pinagook/internal/content"
	"github.com/pinagook/pinagook/internal/coursegen"
	"github.com/pinagook/pinagook/internal/llm"
	"github.com/spf13/cobra"
)

var draftCmd = &cobra.Command{
	Use:   "draft <topic>",
	Short: "Draft a new course with an LLM",
	Long:  "Draft a course about a topic using a configured LLM provider and write the validated JSON into the courses directory.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")

		provider, err := llm.NewProviderFromEnv(cmd.Context())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		cfg := coursegen.DefaultConfig()
		if n, _ := cmd.Flags().GetInt("lessons"); n > 0 {
			cfg.LessonCount = n
		}

		fmt.Printf("Drafting %q with %s...\n", topic, provider.ModelID())

		gen := coursegen.New(provider, cfg)
		raw, course, err := gen.Draft(cmd.Context(), topic)
		if err != nil {
			return err
		}

		outPath, err := draftOutputPath(cmd, course.ID)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, raw, 0o644); err != nil {
			return fmt.Errorf("write course file: %w", err)
		}

		fmt.Printf("Wrote %s: %s (%d lessons)\n", outPath, course.Title, len(course.Lessons))
		return nil
	},
}

func init() {
	draftCmd.Flags().Int("lessons", 0, "Number of lessons to draft")
	draftCmd.Flags().String("out", "", "Output file (defaults to <course-id>.json in the courses directory)")
}

func draftOutputPath(cmd *cobra.Command, courseID string) (string, error) {
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		return out, nil
	}

	dir, _ := cmd.Flags().GetString("courses")
	if dir == "" {
		var err error
		dir, err = content.DefaultCoursesDir()
		if err != nil {
			return "", fmt.Errorf("resolve courses dir: %w", err)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create courses dir: %w", err)
	}
	return filepath.Join(dir, courseID+".json"), nil
}
