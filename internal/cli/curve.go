package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ivlev/animcore/internal/easing"
	"github.com/ivlev/animcore/internal/output"
	"github.com/ivlev/animcore/internal/value"
)

// NewCurveCommand creates the curve command.
func NewCurveCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		out, in []float64
		steps   int
	)

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print an easing curve",
		Long: `Print the eased ratio of a bezier easing curve at evenly spaced
points in [0, 1]. The curve runs from (0, 0) to (1, 1) with the given
outgoing and incoming handles.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(out) != 2 || len(in) != 2 {
				return fmt.Errorf("--out and --in take two numbers: x,y")
			}
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}
			curve := easing.NewCurve(value.Vec(out[0], out[1]), value.Vec(in[0], in[1]))

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "x\tratio")
			for i := 0; i <= steps; i++ {
				x := float64(i) / float64(steps)
				fmt.Fprintln(tw, output.Number(x, 4)+"\t"+output.Number(curve.Ratio(x), 4))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Float64SliceVar(&out, "out", []float64{0.25, 0.25}, "outgoing handle x,y")
	cmd.Flags().Float64SliceVar(&in, "in", []float64{0.75, 0.75}, "incoming handle x,y")
	cmd.Flags().IntVarP(&steps, "steps", "n", 10, "number of intervals")

	return cmd
}
