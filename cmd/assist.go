package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	practice "github.com/tetuanhairi-prog/HMpengurusan"
	"github.com/tetuanhairi-prog/HMpengurusan/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `hm assist [<initial question>]

  Starts an interactive session. The assistant reads the practice books
  through a clerk and answers questions about clients, balances, the
  notarization register and the price list. Requires GEMINI_API_KEY.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	clerk := agent.NewClerk(func() *practice.AppState { return LoadApp() })
	a := agent.New(os.Stdout, os.Stdin, clerk)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
