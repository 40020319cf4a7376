package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivlev/animcore/internal/logger"
	"github.com/ivlev/animcore/internal/scene"
)

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter scene",
		Long: `Write a small valid scene to path (default scene.yaml) as a starting
point for editing. An existing file is kept unless --force is given.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "scene.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			return runInit(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func runInit(cmd *cobra.Command, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	doc, err := scene.Starter(name)
	if err != nil {
		return err
	}
	if _, err := scene.Build(doc); err != nil {
		return fmt.Errorf("starter scene: %w", err)
	}
	if err := scene.Write(doc, path); err != nil {
		return err
	}

	logger.Logger().Debug("scene written", "path", path, "layers", len(doc.Layers))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
