package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List available courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		library, err := loadLibrary(cmd)
		if err != nil {
			return err
		}

		for _, course := range library.Courses() {
			fmt.Printf("%s  %s (%d lessons)\n", course.ID, course.Title, len(course.Lessons))
			for _, lesson := range course.Lessons {
				steps := len(lesson.Steps)
				fmt.Printf("    %s  %s (%d steps)\n", lesson.ID, lesson.Title, steps)
			}
		}
		return nil
	},
}
