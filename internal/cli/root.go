// Package cli implements the cascade command-line interface.
//
// The default command opens the animated window. The tui command shows
// the same simulation in a terminal and simulate runs it headless,
// printing tank levels as it goes.
//
// All commands accept --scene to load a TOML or YAML scene file and
// --verbose for debug logging, which includes every pipe that starts or
// stops flowing.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/tank-cascade/internal/config"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

type rootOptions struct {
	verbose   bool
	scenePath string
}

// Execute runs the CLI with the process arguments.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "cascade",
		Short:        "Animated liquid tanks joined by pipes",
		Long:         `cascade animates liquid draining from feed tanks through a mixing tank and a heated pipe into a final tank.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("cascade %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.scenePath, "scene", "s", "", "scene file (.toml, .yaml)")

	window := newWindowCmd(opts)
	root.RunE = window.RunE
	root.Flags().AddFlagSet(window.Flags())

	root.AddCommand(window)
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newSimulateCmd(opts))
	return root
}

// scene returns the scene named by --scene, or the built-in one.
func (o *rootOptions) scene() (config.Scene, error) {
	if o.scenePath == "" {
		return config.Default(), nil
	}
	return config.Load(o.scenePath)
}
