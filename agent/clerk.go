package agent

import (
	"context"
	"fmt"

	practice "github.com/tetuanhairi-prog/HMpengurusan"
	"github.com/tetuanhairi-prog/HMpengurusan/render"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user runs a small legal practice: client files with fee ledgers, a
			commissioner-for-oaths register, a service price list, and official
			billing documents. Learn about the expert's skills that you can get from
			the Tools to ask them questions. They are at your service and 100%
			dedicated to you, they keep context of your previous questions.

			Devise a plan of questions to ask each expert and come up with the best
			response to the user's request. Answer in the user's language, Malay or
			English.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewClerk builds the expert in charge of reading the practice books.
// The load function is called for every question so the clerk always
// answers from the current state of the file.
func NewClerk(load func() *practice.AppState) *Expert {
	lib := []Function{
		clientBook(load),
		clientLedger(load),
		pjsRegister(load),
		priceList(load),
	}

	return &Expert{
		Name: "Clerk",
		Description: `This is the office Clerk. He is in charge of reading the practice's books:
		the client accounts with their fee ledgers and balances, the
		commissioner-for-oaths register, and the service price list.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the clerk of a small legal practice, in charge of its books.
				You know how to use the Tools to extract relevant information about
				the practice. You are part of a team of experts; yours is everything
				recorded in the books. Pardon their approximative language and figure
				out what they meant.

				Use the available tools to get information about
				  - the client accounts and their outstanding balances
				  - one client's detailed ledger
				  - the notarization register and its monthly totals
				  - the standard service prices
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"output": output}}
}

func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": err.Error()}}
}

func clientBook(load func() *practice.AppState) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "ClientBook",
			Description: `ClientBook lists every client account with its details and current outstanding balance.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all client accounts with their balances.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return success(id, "ClientBook", render.ClientsMarkdown(load().Clients))
		},
	}
}

func clientLedger(load func() *practice.AppState) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "ClientLedger",
			Description: `ClientLedger returns the full fee ledger of one client: every charge and
			payment in recording order, and the resulting balance.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"index": {
						Type:        genai.TypeInteger,
						Description: "The client's position in the client book, as shown by ClientBook.",
					},
				},
				Required: []string{"index"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted ledger with the client's balance.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			idx, ok := args["index"].(float64)
			if !ok {
				return failure(id, "ClientLedger", fmt.Errorf("argument 'index' is not a number but %T", args["index"]))
			}
			c, err := load().ClientAt(int(idx))
			if err != nil {
				return failure(id, "ClientLedger", err)
			}
			return success(id, "ClientLedger", render.LedgerMarkdown(c, practice.Range{}))
		},
	}
}

func pjsRegister(load func() *practice.AppState) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "PjsRegister",
			Description: `PjsRegister returns the commissioner-for-oaths register, newest first,
			followed by the monthly revenue totals of the most recent recorded year.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted register and monthly revenue table.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s := load()
			year := practice.LatestYear(s.PjsRecords)
			out := render.PjsMarkdown(s.PjsRecords) + "\n" + render.MonthlyChartMarkdown(s.PjsRecords, year)
			return success(id, "PjsRegister", out)
		},
	}
}

func priceList(load func() *practice.AppState) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "PriceList",
			Description: `PriceList returns the office's standard services and their prices.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted price list.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return success(id, "PriceList", render.ServicesMarkdown(load().Inventory))
		},
	}
}
