package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/hintbox/internal/config"
	"github.com/javiermolinar/hintbox/internal/demo"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "hintbox",
		Short: "A tooltip overlay library for terminal UIs",
		Long: `Hintbox attaches floating hints to elements of a bubbletea TUI.

Running it without arguments starts the interactive showcase: a row of
buttons, each wired to a tooltip in a different trigger mode.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return demo.RunWithDebug(a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to hintbox-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.themesCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("hintbox %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
