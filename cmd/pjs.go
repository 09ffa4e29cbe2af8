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

type pjsCmd struct {
	sort string
	asc  bool
}

func (*pjsCmd) Name() string     { return "pjs" }
func (*pjsCmd) Synopsis() string { return "list the commissioner-for-oaths register" }
func (*pjsCmd) Usage() string {
	return `hm pjs [-sort date|name|amount] [-asc]

  Lists the notarization register, newest first by default.
`
}

func (c *pjsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "date", "Sort column (date, name, amount)")
	f.BoolVar(&c.asc, "asc", false, "Sort ascending instead of descending")
}

func (c *pjsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := practice.ParseSortKey(c.sort)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s := LoadApp()
	records := practice.SortPjsRecords(s.PjsRecords, key, !c.asc)
	printMarkdown(render.PjsMarkdown(records))
	return subcommands.ExitSuccess
}

type pjsAddCmd struct {
	name   string
	detail string
	amount string
	date   string
}

func (*pjsAddCmd) Name() string     { return "pjs-add" }
func (*pjsAddCmd) Synopsis() string { return "record a notarization transaction" }
func (*pjsAddCmd) Usage() string {
	return `hm pjs-add -name <deponent> -detail <document> -amount <fee> [-date <date>]

  Records one notarization transaction at the top of the register.
`
}

func (c *pjsAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Deponent name (required)")
	f.StringVar(&c.detail, "detail", "", "Document detail")
	f.StringVar(&c.amount, "amount", "", "Fee received (required)")
	f.StringVar(&c.date, "date", "", "Transaction date (defaults to today)")
}

func (c *pjsAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -amount are required")
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
	rec := s.AddPjsRecord(on, c.name, c.detail, amount)
	if st := SaveApp(s); st != subcommands.ExitSuccess {
		return st
	}
	Sheet().Push(mirror.Row{
		Sheet:  "pjs",
		Date:   rec.Date.String(),
		Name:   rec.Name,
		Detail: rec.Detail,
		Amount: rec.Amount.StringFixed(2),
	})
	success("Recorded %s %s\n", rec.Name, practice.M(rec.Amount))
	return subcommands.ExitSuccess
}

type pjsRmCmd struct {
	id string
}

func (*pjsRmCmd) Name() string     { return "pjs-rm" }
func (*pjsRmCmd) Synopsis() string { return "delete a notarization record" }
func (*pjsRmCmd) Usage() string {
	return `hm pjs-rm -id <record id>

  Deletes one record from the register.
`
}

func (c *pjsRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Record id (required)")
}

func (c *pjsRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := LoadApp()
	if !s.RemovePjsRecord(c.id) {
		fmt.Fprintf(os.Stderr, "Error: no record %q\n", c.id)
		return subcommands.ExitUsageError
	}
	return SaveApp(s)
}

type monthlyCmd struct {
	year int
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "show monthly notarization revenue for a year" }
func (*monthlyCmd) Usage() string {
	return `hm monthly [-year <year>]

  Sums the register per calendar month. Defaults to the most recent
  recorded year.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", 0, "Year to report (defaults to the latest recorded)")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := LoadApp()
	year := c.year
	if year == 0 {
		year = practice.LatestYear(s.PjsRecords)
	}
	printMarkdown(render.MonthlyChartMarkdown(s.PjsRecords, year))
	return subcommands.ExitSuccess
}

type shareCmd struct {
	id    string
	token string
}

func (*shareCmd) Name() string     { return "share" }
func (*shareCmd) Synopsis() string { return "share or view one notarization record as a token" }
func (*shareCmd) Usage() string {
	return `hm share [-id <record id> | -token <token>]

  With -id, prints a self-contained token carrying that record. With
  -token, shows the record the token carries. Viewing a token never
  touches the register.
`
}

func (c *shareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Record id to share")
	f.StringVar(&c.token, "token", "", "Token to view")
}

func (c *shareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.token != "" {
		rec, err := practice.DecodeShareToken(c.token)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		printMarkdown(render.PjsMarkdown([]practice.PjsRecord{rec}))
		return subcommands.ExitSuccess
	}
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id or -token is required")
		return subcommands.ExitUsageError
	}

	s := LoadApp()
	rec := s.FindPjsRecord(c.id)
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: no record %q\n", c.id)
		return subcommands.ExitUsageError
	}
	token, err := practice.EncodeShareToken(*rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(token)
	return subcommands.ExitSuccess
}

type exportPjsCmd struct {
	out string
}

func (*exportPjsCmd) Name() string     { return "export-pjs" }
func (*exportPjsCmd) Synopsis() string { return "export the register as csv" }
func (*exportPjsCmd) Usage() string {
	return `hm export-pjs [-o <file>]

  Writes the notarization register as csv to stdout or to a file.
`
}

func (c *exportPjsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Output file (defaults to stdout)")
}

func (c *exportPjsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := practice.ExportPjsCSV(w, s.PjsRecords); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting register: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type importPjsCmd struct {
	in    string
	force bool
}

func (*importPjsCmd) Name() string     { return "import-pjs" }
func (*importPjsCmd) Synopsis() string { return "replace the register from a csv file" }
func (*importPjsCmd) Usage() string {
	return `hm import-pjs -i <file> -force

  Replaces the whole notarization register with the csv content. This
  is destructive, so -force is required.
`
}

func (c *importPjsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "i", "", "Input csv file (required)")
	f.BoolVar(&c.force, "force", false, "Confirm replacing the whole register")
}

func (c *importPjsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required")
		return subcommands.ExitUsageError
	}
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: import replaces the whole register, pass -force to confirm")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()
	records, err := practice.ImportPjsCSV(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing register: %v\n", err)
		return subcommands.ExitFailure
	}

	s := LoadApp()
	s.ReplacePjsRecords(records)
	if st := SaveApp(s); st != subcommands.ExitSuccess {
		return st
	}
	success("Imported %d records\n", len(records))
	return subcommands.ExitSuccess
}
