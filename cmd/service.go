package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	practice "github.com/tetuanhairi-prog/HMpengurusan"
	"github.com/tetuanhairi-prog/HMpengurusan/render"
	"github.com/google/subcommands"
)

type serviceAddCmd struct {
	name  string
	price string
}

func (*serviceAddCmd) Name() string     { return "service-add" }
func (*serviceAddCmd) Synopsis() string { return "add a service to the price list" }
func (*serviceAddCmd) Usage() string {
	return `hm service-add -name <service> -price <amount>

  Adds a standard service to the price list. Billing items named like a
  listed service pick up its price automatically.
`
}

func (c *serviceAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Service name (required)")
	f.StringVar(&c.price, "price", "", "Standard price (required)")
}

func (c *serviceAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -price are required")
		return subcommands.ExitUsageError
	}
	price, err := parseAmount(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s := LoadApp()
	item := s.AddService(c.name, price)
	if st := SaveApp(s); st != subcommands.ExitSuccess {
		return st
	}
	success("Added %s at %s\n", item.Name, practice.M(item.Price))
	return subcommands.ExitSuccess
}

type servicesCmd struct{}

func (*servicesCmd) Name() string     { return "services" }
func (*servicesCmd) Synopsis() string { return "list the service price list" }
func (*servicesCmd) Usage() string {
	return `hm services

  Lists the office's standard services and prices.
`
}

func (c *servicesCmd) SetFlags(f *flag.FlagSet) {}

func (c *servicesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := LoadApp()
	printMarkdown(render.ServicesMarkdown(s.Inventory))
	return subcommands.ExitSuccess
}

type serviceRmCmd struct {
	name string
}

func (*serviceRmCmd) Name() string     { return "service-rm" }
func (*serviceRmCmd) Synopsis() string { return "remove a service from the price list" }
func (*serviceRmCmd) Usage() string {
	return `hm service-rm -name <service>

  Removes a service by name or id.
`
}

func (c *serviceRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Service name or id (required)")
}

func (c *serviceRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := LoadApp()
	svc := s.FindService(c.name)
	if svc == nil {
		svc = s.FindService(strings.ToUpper(strings.TrimSpace(c.name)))
	}
	if svc == nil || !s.RemoveService(svc.ID) {
		fmt.Fprintf(os.Stderr, "Error: no service %q\n", c.name)
		return subcommands.ExitUsageError
	}
	return SaveApp(s)
}
