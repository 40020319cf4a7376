package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ivlev/animcore/internal/config"
	"github.com/ivlev/animcore/internal/output"
	"github.com/ivlev/animcore/internal/sampler"
	"github.com/ivlev/animcore/internal/scene"
	"github.com/ivlev/animcore/internal/system"
)

// NewSampleCommand creates the sample command.
func NewSampleCommand(rootOpts *RootOptions) *cobra.Command {
	cfg := &config.Config{BuildVersion: rootOpts.Version}
	var format string

	cmd := &cobra.Command{
		Use:   "sample [scene]",
		Short: "Evaluate layers over a frame range",
		Long: `Evaluate every layer of a scene at each frame of a range and print
the composed transform matrix, auto-orient angle and extra property values.
The range defaults to the scene's in and out points.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Format = output.Format(format)
			cfg.RangeSet = cmd.Flags().Changed("from") || cmd.Flags().Changed("to")
			return runSample(cmd, cfg, args)
		},
	}

	cmd.Flags().IntVar(&cfg.From, "from", 0, "first frame (default: scene in point)")
	cmd.Flags().IntVar(&cfg.To, "to", 0, "last frame, inclusive (default: scene out point)")
	cmd.Flags().StringSliceVarP(&cfg.Layers, "layer", "l", nil, "layers to sample (default: all)")
	cmd.Flags().StringVarP(&format, "format", "f", string(output.FormatTable), "output format (table|yaml)")
	cmd.Flags().IntVarP(&cfg.Workers, "workers", "w", 0, "layers sampled in parallel (default: logical CPUs)")
	cmd.Flags().BoolVar(&cfg.ShowStats, "stats", false, "print a performance report on stderr")

	return cmd
}

func runSample(cmd *cobra.Command, cfg *config.Config, args []string) error {
	ctx := cmd.Context()

	path, err := resolveScene(args)
	if err != nil {
		return err
	}
	cfg.InputPath = path
	if err := cfg.Validate(); err != nil {
		return err
	}

	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	if s.OutPoint < s.InPoint && !cfg.RangeSet {
		return fmt.Errorf("%s: scene has no frames", path)
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = system.WorkerCount(ctx)
	}
	from, to := cfg.Range(s.InPoint, s.OutPoint)

	res, err := sampler.Sample(ctx, s, sampler.Options{
		From:    from,
		To:      to,
		Layers:  cfg.Layers,
		Workers: workers,
	})
	if err != nil {
		return err
	}

	if err := output.Write(cmd.OutOrStdout(), cfg.Format, res); err != nil {
		return err
	}
	if cfg.ShowStats {
		writeReport(cmd.ErrOrStderr(), cfg, system.HostSummary(ctx), from, to, workers, res)
	}
	return nil
}

func writeReport(w io.Writer, cfg *config.Config, host string, from, to, workers int, res *sampler.Result) {
	rate := 0.0
	if secs := res.Elapsed.Seconds(); secs > 0 {
		rate = float64(res.Evaluations) / secs
	}
	fmt.Fprintf(w,
		"--- [SAMPLING REPORT] ---\n"+
			"Build: %s\n"+
			"Scene: %s\n"+
			"Host: %s\n"+
			"Layers: %d | Frames: %d..%d | Workers: %d\n"+
			"Evaluations: %d\n"+
			"Total Time: %s\n"+
			"Evaluations/s: %.0f\n"+
			"-------------------------\n",
		cfg.BuildVersion, cfg.InputPath, host,
		len(res.Layers), from, to, workers,
		res.Evaluations,
		res.Elapsed.Round(time.Microsecond),
		rate,
	)
}
