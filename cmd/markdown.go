package cmd

import (
	"fmt"

	practice "github.com/tetuanhairi-prog/HMpengurusan"
	"github.com/charmbracelet/glamour"
)

// mdStyle is the glamour style in effect, set from the state's theme.
var mdStyle = "auto"

func useTheme(t practice.ThemeMode) {
	switch t {
	case practice.ThemeDark:
		mdStyle = "dark"
	case practice.ThemeLight:
		mdStyle = "light"
	}
}

// printMarkdown renders a markdown report for the terminal. When
// rendering fails the raw markdown is still printed, the report matters
// more than the styling.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(mdStyle),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
