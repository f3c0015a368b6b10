// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cli builds the cobra command tree shared by the split-markdown
// and simplify-markdown binaries. The two executables differ only in the
// operation they run; everything else (flags, logging, report handling)
// lives here.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Sehktel/Split-Simplify/internal/config"
	"github.com/Sehktel/Split-Simplify/internal/pipeline"
	"github.com/Sehktel/Split-Simplify/pkg/types"
)

// Spec describes one of the operation binaries.
type Spec struct {
	// Op selects which transformation the binary performs.
	Op types.Operation

	// Use is the binary name shown in help output.
	Use string

	// Short and Long are the cobra descriptions.
	Short string
	Long  string

	// Version is the build version, set via ldflags in the main package.
	Version string
}

// New returns the root command for an operation binary.
func New(spec Spec) *cobra.Command {
	var (
		flagConfig   string
		flagReport   string
		flagProgress bool
		flagVerbose  bool
	)

	root := &cobra.Command{
		Use:           spec.Use,
		Short:         spec.Short,
		Long:          spec.Long,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.WarnLevel
			if flagVerbose {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).With().Timestamp().Logger()

			r := pipeline.NewRunner(spec.Op, pipeline.Options{
				ConfigPath: flagConfig,
				Out:        cmd.OutOrStdout(),
				Logger:     logger,
				Progress:   flagProgress,
			})
			rep, err := r.Run()
			if err != nil {
				if errors.Is(err, config.ErrMissingConfigFile) {
					fmt.Fprintf(cmd.ErrOrStderr(),
						"No configuration found. Create %s, for example:\n\n%s\n",
						flagConfig, config.Sample)
				}
				return err
			}

			rep.PrintSummary(cmd.OutOrStdout())
			if flagReport != "" {
				if err := rep.WriteFile(flagReport); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
			}
			return nil
		},
	}

	root.Flags().StringVarP(&flagConfig, "config", "c", config.DefaultFile, "configuration file")
	root.Flags().StringVar(&flagReport, "report", "", "write a YAML run report to this path")
	root.Flags().BoolVar(&flagProgress, "progress", false, "draw a progress bar per directory pair")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Print the version of %s", spec.Use),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", spec.Use, spec.Version)
		},
	})

	return root
}

// Main executes the root command and exits non-zero on failure. Configuration
// errors are the only fatal case; per-file failures end the run with exit
// code zero and show up in the report instead.
func Main(spec Spec) {
	if err := New(spec).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
