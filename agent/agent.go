// Package agent implements the interactive assistant of the hm tool: a
// facilitator model that answers the user by consulting experts, each
// expert backed by function calls into the practice data.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the chat session between the user and the facilitator.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	facilitator *Expert
	experts     []*Expert
}

// New builds an agent writing to w and reading user input from r. The
// facilitator is created over the given experts.
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		experts:     experts,
		facilitator: newFacilitator(experts...),
	}
}

// start opens the Gemini chats, experts first so the facilitator can
// consult them from its very first turn.
func (a *Agent) start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.experts {
		if err := e.Start(ctx, client); err != nil {
			return fmt.Errorf("starting expert %s: %w", e.Name, err)
		}
	}
	if err := a.facilitator.Start(ctx, client); err != nil {
		return fmt.Errorf("starting facilitator: %w", err)
	}
	return nil
}

const prompt = "assist> "

// Run starts the interactive session. Initial prompts, if any, are
// answered before reading from the user; EOF on the input is a clean
// exit, like typing 'bye'.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to hm practice assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		input, done, err := a.next(&prompts)
		if done {
			return nil
		}
		if err != nil {
			return err
		}
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		content, err := a.facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}

// next returns the next user input, draining the initial prompts before
// touching the reader. Queued prompts are echoed so the transcript
// reads like a typed session.
func (a *Agent) next(prompts *[]string) (input string, done bool, err error) {
	if len(*prompts) > 0 {
		input, *prompts = (*prompts)[0], (*prompts)[1:]
		input = strings.TrimSpace(input)
		if input != "" {
			fmt.Fprintln(a.w, input)
		}
		return input, false, nil
	}
	line, err := a.r.ReadString('\n')
	if err == io.EOF {
		return "", true, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(line), false, nil
}
