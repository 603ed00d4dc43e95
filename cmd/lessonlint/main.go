// Command lessonlint validates the embedded lesson catalog: record
// integrity plus a few editorial checks that are warnings rather than
// errors. Run it in CI after editing lessons.yaml.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"widget-lessons/internal/catalog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:           "lessonlint",
		Short:         "Validate the embedded lesson catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lessons := catalog.Lessons()
			if err := catalog.Validate(lessons); err != nil {
				return fmt.Errorf("catalog invalid: %w", err)
			}

			warnings := editorialWarnings(lessons)
			for _, w := range warnings {
				cmd.Printf("warning: %s\n", w)
			}
			if strict && len(warnings) > 0 {
				return fmt.Errorf("%d warning(s) in strict mode", len(warnings))
			}

			cmd.Printf("ok: %d lessons\n", len(lessons))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat editorial warnings as errors")
	return cmd
}

// editorialWarnings flags catalog entries that are valid but likely
// unfinished: missing hints on harder lessons, very short descriptions,
// paths that stray from the /lessons/ prefix.
func editorialWarnings(lessons []catalog.Lesson) []string {
	var out []string
	for _, l := range lessons {
		if (l.Difficulty == catalog.Hard || l.Difficulty == catalog.VeryHard) && l.Hint == "" {
			out = append(out, fmt.Sprintf("lesson %d (%s): no hint on a %s lesson", l.ID, l.Title, l.Difficulty))
		}
		if len([]rune(l.Description)) < 40 {
			out = append(out, fmt.Sprintf("lesson %d (%s): description is very short", l.ID, l.Title))
		}
		if len(l.Path) < len("/lessons/") || l.Path[:len("/lessons/")] != "/lessons/" {
			out = append(out, fmt.Sprintf("lesson %d (%s): path %q is outside /lessons/", l.ID, l.Title, l.Path))
		}
	}
	return out
}
