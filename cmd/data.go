package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	practice "github.com/tetuanhairi-prog/HMpengurusan"
	"github.com/google/subcommands"
)

type backupCmd struct {
	out string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "write the whole practice state to a backup file" }
func (*backupCmd) Usage() string {
	return `hm backup -o <file>

  Writes the whole practice state, every collection and setting, as one
  json backup file.
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Backup file to write (required)")
}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.out == "" {
		fmt.Fprintln(os.Stderr, "Error: -o is required")
		return subcommands.ExitUsageError
	}
	s := LoadApp()
	if err := practice.SaveState(c.out, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing backup: %v\n", err)
		return subcommands.ExitFailure
	}
	success("Wrote %s\n", c.out)
	return subcommands.ExitSuccess
}

type restoreCmd struct {
	in    string
	force bool
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the practice state from a backup file" }
func (*restoreCmd) Usage() string {
	return `hm restore -i <file> -force

  Validates a backup and replaces the whole practice state with it. A
  backup missing the client or register collections is rejected and the
  current state stays untouched. This is destructive, so -force is
  required.
`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "i", "", "Backup file to restore (required)")
	f.BoolVar(&c.force, "force", false, "Confirm replacing the whole practice state")
}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required")
		return subcommands.ExitUsageError
	}
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: restore replaces the whole practice state, pass -force to confirm")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	s, err := practice.RestoreState(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if st := SaveApp(s); st != subcommands.ExitSuccess {
		return st
	}
	success("Restored %d clients and %d records\n", len(s.Clients), len(s.PjsRecords))
	return subcommands.ExitSuccess
}
