package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func newGraphCmd(fl *flags, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Render the task graph in Graphviz DOT form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := fl.newApp(outW, errW)
			if err != nil {
				return err
			}
			res, err := a.BuildGraph(cmd.Context())
			if err != nil {
				return err
			}
			return res.Graph.WriteDOT(outW, "methylgrid")
		},
	}
}
