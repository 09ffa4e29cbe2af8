package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	practice "github.com/tetuanhairi-prog/HMpengurusan"
	"github.com/tetuanhairi-prog/HMpengurusan/config"
	"github.com/tetuanhairi-prog/HMpengurusan/render"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// itemsFlag collects repeated -item flags.
type itemsFlag []string

func (i *itemsFlag) String() string { return strings.Join(*i, ", ") }
func (i *itemsFlag) Set(v string) error {
	*i = append(*i, v)
	return nil
}

// receiptCmd issues any of the three billing documents; the kind field
// decides which one, so receipt, invoice and quotation share one
// implementation.
type receiptCmd struct {
	kind     practice.DocKind
	customer string
	phone    string
	address  string
	date     string
	notes    string
	cash     bool
	items    itemsFlag
	pdf      string
}

func (c *receiptCmd) Name() string { return c.kind.String() }
func (c *receiptCmd) Synopsis() string {
	return fmt.Sprintf("issue a %s from an item list", c.kind)
}
func (c *receiptCmd) Usage() string {
	return fmt.Sprintf(`hm %s -customer <name> -item <name[:price[:qty]]> ... [-pdf <file>]

  Issues a %s numbered from the shared document counter. Items named
  exactly like a listed service pick up the listed price; an explicit
  price wins. A quantity above one folds into the line amount and
  label. Use -cash for a walk-in payer.
`, c.kind, c.kind)
}

func (c *receiptCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "customer", "", "Customer name (required unless -cash)")
	f.StringVar(&c.phone, "phone", "", "Customer phone")
	f.StringVar(&c.address, "address", "", "Customer address")
	f.StringVar(&c.date, "date", "", "Document date (defaults to today)")
	f.StringVar(&c.notes, "notes", "", "Free-form notes printed on the document")
	f.BoolVar(&c.cash, "cash", false, "Bill the walk-in cash customer")
	f.Var(&c.items, "item", "Line item as name[:price[:qty]], repeatable")
	f.StringVar(&c.pdf, "pdf", "", "Also write the printable document to this pdf file")
}

func (c *receiptCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := dateOrToday(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	customer := c.customer
	if c.cash && customer == "" {
		customer = practice.CashCustomer
	}

	s := LoadApp()
	items, err := parseItems(c.items, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	doc, err := s.IssueBill(c.kind, customer, c.phone, c.address, on, c.notes, items, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	// the consumed counter value must be persisted before the document leaves the office
	if st := SaveApp(s); st != subcommands.ExitSuccess {
		return st
	}
	return output(doc, letterhead(s), c.pdf)
}

// letterhead resolves the firm profile, letting a logo stored in the
// practice state override the profile's one.
func letterhead(s *practice.AppState) config.Firm {
	firm := FirmProfile()
	if s.FirmLogo != "" {
		firm.LogoPath = s.FirmLogo
	}
	return firm
}

// parseItems resolves the -item flags against the service price list.
func parseItems(raw []string, s *practice.AppState) ([]practice.DraftItem, error) {
	items := make([]practice.DraftItem, 0, len(raw))
	for _, spec := range raw {
		parts := strings.SplitN(spec, ":", 3)
		name := strings.TrimSpace(parts[0])
		item := practice.DraftItem{Name: name, Qty: 1}

		if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
			price, err := parseAmount(parts[1])
			if err != nil {
				return nil, fmt.Errorf("item %q: %w", spec, err)
			}
			item.Price = price
		} else if svc := s.FindService(strings.ToUpper(name)); svc != nil {
			item.Price = svc.Price
		} else {
			item.Price = decimal.Zero
		}

		if len(parts) > 2 {
			qty, err := strconv.Atoi(strings.TrimSpace(parts[2]))
			if err != nil {
				return nil, fmt.Errorf("item %q: invalid quantity: %w", spec, err)
			}
			item.Qty = qty
		}
		items = append(items, item)
	}
	return items, nil
}

// output renders a document to the terminal and optionally to a pdf.
func output(doc *practice.Document, firm config.Firm, pdf string) subcommands.ExitStatus {
	view := render.NewDocument(doc, firm)
	printMarkdown(render.RenderDocument(view))
	if pdf == "" {
		return subcommands.ExitSuccess
	}
	file, err := os.Create(pdf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()
	if err := render.DocumentPDF(file, view); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	success("Wrote %s\n", pdf)
	return subcommands.ExitSuccess
}

type statementCmd struct {
	client int
	from   string
	to     string
	pdf    string
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "issue an account statement from a client ledger" }
func (*statementCmd) Usage() string {
	return `hm statement -client <index> [-from <date>] [-to <date>] [-pdf <file>]

  Projects the client's ledger, optionally date-filtered, into an
  account statement. Statements are timestamp-numbered and never touch
  the shared document counter.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.client, "client", -1, "Client index as shown by 'hm clients' (required)")
	f.StringVar(&c.from, "from", "", "Start date of the range (inclusive)")
	f.StringVar(&c.to, "to", "", "End date of the range (inclusive)")
	f.StringVar(&c.pdf, "pdf", "", "Also write the printable document to this pdf file")
}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s := LoadApp()
	doc, err := s.IssueStatement(c.client, r, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return output(doc, letterhead(s), c.pdf)
}
