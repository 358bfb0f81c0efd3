// Package cli implements the paceviz command-line interface.
//
// This package provides commands for detecting the format of PACE benchmark
// graph files and rendering them into the textual graph-description consumed
// by the downstream drawing renderer, with optional DOT/SVG/JSON sinks. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Parse a benchmark file, apply annotations, emit a description
//   - detect: Report which format a file would be parsed as
//   - completion: Generate shell completion scripts
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().Execute(); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pacetools/paceviz/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "paceviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "paceviz turns PACE benchmark graph files into drawing descriptions",
		Long:         `paceviz parses graph and tree-decomposition files from the PACE benchmark suite, applies visual annotations, and emits a deterministic textual description for a graph-drawing renderer.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.detectCommand())
	root.AddCommand(c.completionCommand())

	return root
}
