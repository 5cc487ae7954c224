package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newPlanCmd(fl *flags, outW, errW io.Writer) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Validate the manifest and emit the full task graph as a YAML plan",
		Long: `plan runs the complete pass: manifest parsing, per-row filesystem
validation, sample-registry fold, genome discovery, target enumeration, and
task-graph construction. The result is written as a YAML plan document for
the execution engine. Any validation failure aborts before a single task is
emitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := fl.newApp(outW, errW)
			if err != nil {
				return err
			}

			w := outW
			if outPath != "" && outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating plan file: %w", err)
				}
				defer f.Close()
				w = f
			}
			return a.Plan(cmd.Context(), w)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the plan to this file instead of stdout")
	return cmd
}
