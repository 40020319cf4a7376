package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivlev/animcore/internal/scene"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [scene]",
		Short: "Check a scene without sampling it",
		Long: `Load a scene and run every structural check: keyframe ordering,
missing start frames or easing handles, path vertex counts and duplicate
names. Prints a summary of the layers when the scene is valid.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, err := resolveScene(args)
	if err != nil {
		return err
	}

	s, err := scene.Load(path)
	if err != nil {
		var be *scene.BuildError
		if errors.As(err, &be) {
			fmt.Fprintf(cmd.OutOrStdout(), "invalid %s\n  %s\n", path, be.Error())
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ok %s: %d layers, frames %d..%d\n", path, len(s.Layers), s.InPoint, s.OutPoint)
	for _, l := range s.Layers {
		state := "static"
		if l.IsAnimated() {
			state = "animated"
		}
		fmt.Fprintf(out, "  %s (%s, %s)\n", l.Name, state, plural(len(l.Properties), "property", "properties"))
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
