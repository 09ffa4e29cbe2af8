package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/tetuanhairi-prog/HMpengurusan/cmd"
)

func main() {
	// Shell completion: a no-op unless invoked by the completion hooks.
	completion().Complete("hm")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := map[string]*complete.Command{}
	for _, name := range []string{
		"register", "clients", "unregister", "export-clients", "import-clients",
		"charge", "ledger", "erase", "open", "close",
		"receipt", "invoice", "quotation", "statement",
		"pjs", "pjs-add", "pjs-rm", "monthly", "share", "export-pjs", "import-pjs",
		"service-add", "services", "service-rm",
		"backup", "restore", "theme", "logo", "page",
		"assist", "topic",
	} {
		sub[name] = &complete.Command{}
	}
	sub["theme"].Args = predict.Set{"light", "dark"}
	sub["page"].Args = predict.Set{"guaman", "pjs", "inventory", "invoice"}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"f": predict.Files("*.json"),
		},
	}
}
