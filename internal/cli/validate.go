package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newValidateCmd(fl *flags, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the manifest against the filesystem and stop",
		Long: `validate parses the manifest, checks every referenced read file and
genome directory exists, and folds the rows into the sample registry. It is
the fast feedback loop for manifest editing; no task graph is built.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := fl.newApp(outW, errW)
			if err != nil {
				return err
			}
			reg, _, err := a.Validate(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range reg.Samples() {
				fmt.Fprintf(outW, "%s\t%s\t%s\t%d genome(s)\n", s.ID, s.ShortID, s.Library, len(s.Genomes))
			}
			fmt.Fprintf(outW, "OK: %d sample(s)\n", reg.Len())
			return nil
		},
	}
}
