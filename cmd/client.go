package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	practice "github.com/tetuanhairi-prog/HMpengurusan"
	"github.com/tetuanhairi-prog/HMpengurusan/mirror"
	"github.com/tetuanhairi-prog/HMpengurusan/render"
	"github.com/google/subcommands"
)

type registerCmd struct {
	name    string
	detail  string
	phone   string
	address string
	fee     string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a new client with the agreed fee" }
func (*registerCmd) Usage() string {
	return `hm register -name <name> -fee <amount> [-detail <matter>] [-phone <phone>] [-address <address>]

  Registers a new client. The agreed professional fee is recorded as the
  opening ledger entry, so the client starts owing that amount.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Client name (required)")
	f.StringVar(&c.detail, "detail", "", "Matter or case detail")
	f.StringVar(&c.phone, "phone", "", "Phone number")
	f.StringVar(&c.address, "address", "", "Postal address")
	f.StringVar(&c.fee, "fee", "0", "Agreed professional fee")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	fee, err := parseAmount(c.fee)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s := LoadApp()
	client := s.AddClient(c.name, c.detail, c.phone, c.address, fee)
	if st := SaveApp(s); st != subcommands.ExitSuccess {
		return st
	}
	Sheet().Push(mirror.Row{
		Sheet:  "clients",
		Date:   practice.Today().String(),
		Name:   client.Name,
		Detail: client.Detail,
		Amount: client.Balance().StringFixed(2),
	})
	success("Registered %s with opening balance %s\n", client.Name, practice.M(client.Balance()))
	return subcommands.ExitSuccess
}

type clientsCmd struct{}

func (*clientsCmd) Name() string     { return "clients" }
func (*clientsCmd) Synopsis() string { return "list all client accounts with balances" }
func (*clientsCmd) Usage() string {
	return `hm clients

  Lists every client account with its derived balance.
`
}

func (c *clientsCmd) SetFlags(f *flag.FlagSet) {}

func (c *clientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := LoadApp()
	printMarkdown(render.ClientsMarkdown(s.Clients))
	return subcommands.ExitSuccess
}

type unregisterCmd struct {
	client int
}

func (*unregisterCmd) Name() string     { return "unregister" }
func (*unregisterCmd) Synopsis() string { return "remove a client and its whole ledger" }
func (*unregisterCmd) Usage() string {
	return `hm unregister -client <index>

  Removes a client wholesale, ledger included. There is no archive.
`
}

func (c *unregisterCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.client, "client", -1, "Client index as shown by 'hm clients' (required)")
}

func (c *unregisterCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := LoadApp()
	client, err := s.ClientAt(c.client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	name := client.Name
	s.RemoveClient(client.ID)
	if st := SaveApp(s); st != subcommands.ExitSuccess {
		return st
	}
	success("Removed %s\n", name)
	return subcommands.ExitSuccess
}

type exportClientsCmd struct {
	out string
}

func (*exportClientsCmd) Name() string     { return "export-clients" }
func (*exportClientsCmd) Synopsis() string { return "export the client book as csv" }
func (*exportClientsCmd) Usage() string {
	return `hm export-clients [-o <file>]

  Writes the client book as csv, one row per client with the current
  balance, to stdout or to a file.
`
}

func (c *exportClientsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Output file (defaults to stdout)")
}

func (c *exportClientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := LoadApp()
	w := os.Stdout
	if c.out != "" {
		file, err := os.Create(c.out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}
	if err := practice.ExportClientsCSV(w, s.Clients); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting clients: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type importClientsCmd struct {
	in    string
	force bool
}

func (*importClientsCmd) Name() string     { return "import-clients" }
func (*importClientsCmd) Synopsis() string { return "replace the client book from a csv file" }
func (*importClientsCmd) Usage() string {
	return `hm import-clients -i <file> -force

  Replaces the whole client book with the csv content. Balances come
  back as a single imported entry, not the original history. This is
  destructive, so -force is required.
`
}

func (c *importClientsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "i", "", "Input csv file (required)")
	f.BoolVar(&c.force, "force", false, "Confirm replacing the whole client book")
}

func (c *importClientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required")
		return subcommands.ExitUsageError
	}
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: import replaces the whole client book, pass -force to confirm")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()
	clients, err := practice.ImportClientsCSV(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing clients: %v\n", err)
		return subcommands.ExitFailure
	}

	s := LoadApp()
	s.ReplaceClients(clients)
	if st := SaveApp(s); st != subcommands.ExitSuccess {
		return st
	}
	success("Imported %d clients\n", len(clients))
	return subcommands.ExitSuccess
}
