package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newTargetsCmd(fl *flags, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "Print every artifact path a complete run must produce",
		Long: `targets prints the sorted artifact set derived from the manifest and the
genome listing, one path per line. A run is complete exactly when every
printed path exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := fl.newApp(outW, errW)
			if err != nil {
				return err
			}
			res, err := a.BuildGraph(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range res.Targets {
				fmt.Fprintln(outW, t)
			}
			return nil
		},
	}
}
