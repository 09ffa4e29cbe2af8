package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	practice "github.com/tetuanhairi-prog/HMpengurusan"
	"github.com/google/subcommands"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or set the display theme" }
func (*themeCmd) Usage() string {
	return `hm theme [light|dark]

  Without an argument, prints the current theme. With one, sets it; the
  terminal rendering follows it.
`
}

func (c *themeCmd) SetFlags(f *flag.FlagSet) {}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := LoadApp()
	if f.NArg() == 0 {
		fmt.Println(s.Theme)
		return subcommands.ExitSuccess
	}
	theme, err := practice.ParseThemeMode(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s.Theme = theme
	return SaveApp(s)
}

type logoCmd struct {
	clear bool
}

func (*logoCmd) Name() string     { return "logo" }
func (*logoCmd) Synopsis() string { return "show, set or clear the firm logo" }
func (*logoCmd) Usage() string {
	return `hm logo [-clear] [<path>]

  Without an argument, prints the stored logo path. With one, stores
  it; -clear removes it. The logo is stamped on printed documents.
`
}

func (c *logoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.clear, "clear", false, "Remove the stored logo")
}

func (c *logoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := LoadApp()
	switch {
	case c.clear:
		s.FirmLogo = ""
	case f.NArg() > 0:
		s.FirmLogo = f.Arg(0)
	default:
		if s.FirmLogo == "" {
			fmt.Println("no logo set")
		} else {
			fmt.Println(s.FirmLogo)
		}
		return subcommands.ExitSuccess
	}
	return SaveApp(s)
}

type pageCmd struct{}

func (*pageCmd) Name() string     { return "page" }
func (*pageCmd) Synopsis() string { return "show or set the page shown on next start" }
func (*pageCmd) Usage() string {
	return `hm page [guaman|pjs|inventory|invoice]

  Without an argument, prints the remembered page. With one, sets it.
`
}

func (c *pageCmd) SetFlags(f *flag.FlagSet) {}

func (c *pageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := LoadApp()
	if f.NArg() == 0 {
		fmt.Println(s.CurrentPage)
		return subcommands.ExitSuccess
	}
	page, err := practice.ParsePageID(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s.CurrentPage = page
	return SaveApp(s)
}
