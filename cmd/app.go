// Package cmd implements the CLI application to run the practice books.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	practice "github.com/tetuanhairi-prog/HMpengurusan"
	"github.com/tetuanhairi-prog/HMpengurusan/config"
	"github.com/tetuanhairi-prog/HMpengurusan/mirror"
	"github.com/fatih/color"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "clients")
	c.Register(&clientsCmd{}, "clients")
	c.Register(&unregisterCmd{}, "clients")
	c.Register(&exportClientsCmd{}, "clients")
	c.Register(&importClientsCmd{}, "clients")

	c.Register(&chargeCmd{}, "ledger")
	c.Register(&ledgerCmd{}, "ledger")
	c.Register(&eraseCmd{}, "ledger")
	c.Register(&openCmd{}, "ledger")
	c.Register(&closeCmd{}, "ledger")

	c.Register(&receiptCmd{kind: practice.Receipt}, "billing")
	c.Register(&receiptCmd{kind: practice.Invoice}, "billing")
	c.Register(&receiptCmd{kind: practice.Quotation}, "billing")
	c.Register(&statementCmd{}, "billing")

	c.Register(&pjsCmd{}, "pjs")
	c.Register(&pjsAddCmd{}, "pjs")
	c.Register(&pjsRmCmd{}, "pjs")
	c.Register(&monthlyCmd{}, "pjs")
	c.Register(&shareCmd{}, "pjs")
	c.Register(&exportPjsCmd{}, "pjs")
	c.Register(&importPjsCmd{}, "pjs")

	c.Register(&serviceAddCmd{}, "services")
	c.Register(&servicesCmd{}, "services")
	c.Register(&serviceRmCmd{}, "services")

	c.Register(&backupCmd{}, "data")
	c.Register(&restoreCmd{}, "data")

	c.Register(&themeCmd{}, "settings")
	c.Register(&logoCmd{}, "settings")
	c.Register(&pageCmd{}, "settings")

	c.Register(&assistCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateFile = flag.String("f", "", "Path to the practice state file (overrides HM_STATE_FILE)")

// appConfig loads the environment configuration once.
var appConfig = func() func() *config.Config {
	var cfg *config.Config
	return func() *config.Config {
		if cfg != nil {
			return cfg
		}
		c, err := config.Load()
		if err != nil {
			log.Printf("warning: %v", err)
			c = &config.Config{StateFile: practice.DefaultStateFile, FirmFile: "firm.yaml"}
		}
		cfg = c
		return cfg
	}
}()

// statePath resolves the state file: the -f flag wins over the environment.
func statePath() string {
	if *stateFile != "" {
		return *stateFile
	}
	return appConfig().StateFile
}

// LoadApp reads the practice state, creating an empty one when the
// file is missing. It also points the terminal renderer at the
// state's theme.
func LoadApp() *practice.AppState {
	s := practice.LoadState(statePath())
	useTheme(s.Theme)
	return s
}

// SaveApp persists the whole state back to the app state file.
func SaveApp(s *practice.AppState) subcommands.ExitStatus {
	if err := practice.SaveState(statePath(), s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving practice state: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// FirmProfile loads the letterhead profile, falling back to the
// built-in default.
func FirmProfile() config.Firm {
	firm, err := config.LoadFirm(appConfig().FirmFile)
	if err != nil {
		log.Printf("warning: %v", err)
		return config.DefaultFirm()
	}
	return firm
}

// Sheet returns the configured spreadsheet mirror, or a no-op when no
// endpoint is set.
func Sheet() mirror.Mirror {
	if addr := appConfig().SheetURL; addr != "" {
		return mirror.NewSheet(addr)
	}
	return mirror.Nop{}
}

// success prints a green confirmation line.
var success = color.New(color.FgGreen).PrintfFunc()

// parseAmount parses a money amount from a command line flag.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// parseRange parses the -from and -to flags into a date range, either
// side optional.
func parseRange(from, to string) (practice.Range, error) {
	var r practice.Range
	if from != "" {
		d, err := practice.ParseDate(from)
		if err != nil {
			return r, fmt.Errorf("invalid -from date: %w", err)
		}
		r.From = d
	}
	if to != "" {
		d, err := practice.ParseDate(to)
		if err != nil {
			return r, fmt.Errorf("invalid -to date: %w", err)
		}
		r.To = d
	}
	return practice.NewRange(r.From, r.To), nil
}

// dateOrToday parses an optional -date flag, defaulting to today.
func dateOrToday(s string) (practice.Date, error) {
	if s == "" {
		return practice.Today(), nil
	}
	return practice.ParseDate(s)
}
