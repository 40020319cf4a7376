package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivlev/animcore/internal/logger"
	"github.com/ivlev/animcore/internal/scene"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Version string
}

// NewRootCommand creates the root command for the animcore CLI.
func NewRootCommand(version string) *cobra.Command {
	opts := &RootOptions{Version: version}

	cmd := &cobra.Command{
		Use:   "animcore",
		Short: "Evaluate keyframed animation scenes",
		Long: `animcore resolves keyframed layer animations to concrete values.

Scenes are YAML documents listing layers with anchor, position, scale and
rotation tracks plus extra scalar, vector, color and path properties. Each
track is a list of keyframes with bezier easing handles.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			logger.SetLogger(slog.New(h))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewSampleCommand(opts))
	cmd.AddCommand(NewCurveCommand(opts))
	cmd.AddCommand(NewInitCommand(opts))

	return cmd
}

// resolveScene turns the optional scene argument into a file path. A
// directory, or no argument at all, selects the newest scene file in it.
func resolveScene(args []string) (string, error) {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	fi, err := os.Stat(target)
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		return target, nil
	}
	latest, err := scene.FindLatest(target)
	if err != nil {
		return "", fmt.Errorf("%w; pass a scene file", err)
	}
	logger.Logger().Info("using newest scene", "path", latest)
	return latest, nil
}
