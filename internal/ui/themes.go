package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/hintbox/theme"
)

func (a *App) themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available hint color palettes",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runThemes(a.config.UI.Theme)
		},
	}
}

func runThemes(current string) error {
	fmt.Println(formatHeader("Available themes"))
	fmt.Println(formatMuted(strings.Repeat("─", min(32, termWidth()))))

	for _, name := range theme.Available() {
		t, err := theme.Load(name)
		if err != nil {
			return fmt.Errorf("loading theme %q: %w", name, err)
		}

		label := padTo(name, 12)
		if name == current {
			label = formatAccent(padTo(name+" *", 12))
		}

		accents := []string{
			t.Basic, t.Primary, t.Success, t.Info, t.Warning, t.Danger, t.Control,
		}
		blocks := make([]string, 0, len(accents))
		for _, hex := range accents {
			blocks = append(blocks, swatch(hex))
		}
		fmt.Printf("  %s %s\n", label, strings.Join(blocks, " "))
	}

	fmt.Println()
	fmt.Println(formatMuted("* current theme; change it with `hintbox config`"))
	return nil
}
