package agent

import (
	"context"
	"fmt"

	finquant "github.com/Magic-Academy/FinQuant"
	"github.com/Magic-Academy/FinQuant/docs"
	"github.com/Magic-Academy/FinQuant/optimise"
	"github.com/Magic-Academy/FinQuant/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation itself.
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

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand the risk, return and composition
			of his investment portfolio, and to explore better weight allocations.

			Devise a plan of questions to ask each expert and come up with the best
			response to the user's request. Check the portfolio first so you know
			which instruments the user holds.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader returns the expert grounding answers in current market news.
func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		very well aware of all the financial products and institutions,
		and of the latest news about the different funds or companies.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in trading. You can search and find anything related to
			financial institutions, companies, markets, funds etc. You leverage Google
			Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the
			user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the user's portfolio. Its tools
// read the given portfolio and run optimisations on it.
func NewAnalyst(p *finquant.Portfolio) *Expert {
	lib := []Function{newReportFunc(p), newOptimiseFunc(p), topicFunc}

	return &Expert{
		Name: "Analyst",
		Description: `This is the quantitative Analyst. He knows the composition of the
		user's portfolio, its risk and return figures, and can search for better
		weight allocations.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a quantitative analyst in charge of the user's investment portfolio.
				You know how to use the Tools to extract relevant information about it:
				  - the full portfolio report, with weights and risk/return figures,
				  - weight optimisations, to propose better allocations,
				  - the documentation, to explain how the figures are computed.
				You are part of a team of experts; yours is everything about the
				portfolio's composition and statistics. Pardon their approximative
				language and figure out what they meant.
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

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func newReportFunc(p *finquant.Portfolio) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "PortfolioReport",
			Description: `PortfolioReport renders the user's portfolio: every holding with
			its fair market value, weight, expected return, volatility, skewness and
			kurtosis, plus the portfolio-level figures.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report of the portfolio.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return okResponse(id, "PortfolioReport", renderer.RenderPortfolio(p))
		},
	}
}

func newOptimiseFunc(p *finquant.Portfolio) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Optimise",
			Description: `Optimise runs a Monte Carlo search for weight allocations that
			maximise the Sharpe ratio or minimise volatility, and reports the best of
			each next to the current allocation.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"trials": {
						Type:        genai.TypeNumber,
						Description: "Number of random portfolios to draw. Defaults to 10000.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report of the optimised portfolios.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var cfg optimise.Config
			if trials, ok := args["trials"].(float64); ok {
				cfg.NumTrials = int(trials)
			}
			result, err := p.Optimise(nil, cfg)
			if err != nil {
				return errResponse(id, "Optimise", err)
			}
			return okResponse(id, "Optimise", renderer.OptimisationMarkdown(result))
		},
	}
}

var topicFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Documentation",
		Description: `Documentation returns the user documentation of a topic. Use it to
		explain how the portfolio figures are computed. Pass "*" for all topics.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"topic": {
					Type:        genai.TypeString,
					Description: "One of: building, statistics, optimisation, data, or * for all.",
				},
			},
			Required: []string{"topic"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The markdown content of the topic.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		topic, ok := args["topic"].(string)
		if !ok {
			return errResponse(id, "Documentation", fmt.Errorf("argument 'topic' is not a string but %T", args["topic"]))
		}
		content, err := docs.GetTopic(topic)
		if err != nil {
			return errResponse(id, "Documentation", err)
		}
		return okResponse(id, "Documentation", content)
	},
}
