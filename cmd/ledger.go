package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	practice "github.com/tetuanhairi-prog/HMpengurusan"
	"github.com/tetuanhairi-prog/HMpengurusan/render"
	"github.com/google/subcommands"
)

type chargeCmd struct {
	client int
	desc   string
	amount string
	date   string
}

func (*chargeCmd) Name() string     { return "charge" }
func (*chargeCmd) Synopsis() string { return "add a ledger entry to a client account" }
func (*chargeCmd) Usage() string {
	return `hm charge -client <index> -desc <description> -amount <amount> [-date <date>]

  Appends an entry to the client's ledger. A positive amount is a
  charge, a negative amount is a payment received.
`
}

func (c *chargeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.client, "client", -1, "Client index as shown by 'hm clients' (required)")
	f.StringVar(&c.desc, "desc", "", "Entry description (required)")
	f.StringVar(&c.amount, "amount", "", "Signed amount (required)")
	f.StringVar(&c.date, "date", "", "Entry date (defaults to today)")
}

func (c *chargeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.desc == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -desc and -amount are required")
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := dateOrToday(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s := LoadApp()
	client, err := s.ClientAt(c.client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	client.AddEntry(practice.NewLedgerEntry(on, c.desc, amount))
	if st := SaveApp(s); st != subcommands.ExitSuccess {
		return st
	}
	success("Balance of %s is now %s\n", client.Name, practice.M(client.Balance()))
	return subcommands.ExitSuccess
}

type ledgerCmd struct {
	client int
	from   string
	to     string
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "show a client's ledger and balance" }
func (*ledgerCmd) Usage() string {
	return `hm ledger -client <index> [-from <date>] [-to <date>]

  Shows the client's ledger entries in recording order, optionally
  limited to a date range, with the balance of the shown entries.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.client, "client", -1, "Client index as shown by 'hm clients' (required)")
	f.StringVar(&c.from, "from", "", "Start date of the range (inclusive)")
	f.StringVar(&c.to, "to", "", "End date of the range (inclusive)")
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s := LoadApp()
	client, err := s.ClientAt(c.client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(render.LedgerMarkdown(client, r))
	return subcommands.ExitSuccess
}

type eraseCmd struct {
	client int
	entry  int
}

func (*eraseCmd) Name() string     { return "erase" }
func (*eraseCmd) Synopsis() string { return "delete one ledger entry by its position" }
func (*eraseCmd) Usage() string {
	return `hm erase -client <index> -entry <position>

  Deletes the entry at the given position of the client's full ledger,
  as shown by 'hm ledger' without a date range. The balance follows
  immediately.
`
}

func (c *eraseCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.client, "client", -1, "Client index as shown by 'hm clients' (required)")
	f.IntVar(&c.entry, "entry", -1, "Entry position as shown by 'hm ledger' (required)")
}

func (c *eraseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := LoadApp()
	client, err := s.ClientAt(c.client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := client.DeleteEntry(c.entry); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if st := SaveApp(s); st != subcommands.ExitSuccess {
		return st
	}
	success("Balance of %s is now %s\n", client.Name, practice.M(client.Balance()))
	return subcommands.ExitSuccess
}

type openCmd struct {
	client int
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open a client's ledger view" }
func (*openCmd) Usage() string {
	return `hm open -client <index>

  Marks the client's ledger as the open view and shows it.
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.client, "client", -1, "Client index as shown by 'hm clients' (required)")
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := LoadApp()
	if err := s.OpenLedger(c.client); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if st := SaveApp(s); st != subcommands.ExitSuccess {
		return st
	}
	printMarkdown(render.LedgerMarkdown(s.ActiveClient(), practice.Range{}))
	return subcommands.ExitSuccess
}

type closeCmd struct{}

func (*closeCmd) Name() string     { return "close" }
func (*closeCmd) Synopsis() string { return "close the open ledger view" }
func (*closeCmd) Usage() string {
	return `hm close

  Clears the open ledger view. Closing an already closed view is a
  no-op.
`
}

func (c *closeCmd) SetFlags(f *flag.FlagSet) {}

func (c *closeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := LoadApp()
	s.CloseLedger()
	return SaveApp(s)
}
