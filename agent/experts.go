package agent

import (
	"github.com/etnz/wealth"
	"github.com/etnz/wealth/docs"
	"github.com/etnz/wealth/selic"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used by default.
const DefaultModel = "gemini-2.5-pro"

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user records the balance of their accounts every month or so, and wants to know
			whether their wealth grows as expected and how to reach their savings goals.
			Devise a plan of questions to ask to each expert and come up with the best response
			to the user's request. Answer in the user's language.
		`),
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the expert computing figures out of the user's ledger.
func NewAnalyst(model string, l *wealth.Ledger, rates selic.Fetcher) *Expert {
	tools := []Function{statsTool(l), goalTool(l), institutionsTool(l), planTool(l, rates)}
	stats, _ := docs.GetTopics("stats", "goal", "plan")
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. They read the user's ledger of balances and compute the
		wealth statistics, the progress toward a goal, the balances by institution and savings plans.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(tools)},
			},
			SystemInstruction: instruction(`
			You are a financial analyst in charge of the user's ledger of balances.
			Use the Tools to compute figures, never compute them yourself.
			Figures are explained in the documentation below.

			` + stats),
		},
		Library: NewLibrary(tools),
	}
}

// NewEconomist returns the expert knowing about the economy, grounded with Google Search.
func NewEconomist(model string) *Expert {
	return &Expert{
		Name: "Economist",
		Description: `This is the Economist. They know about interest rates, inflation, and the
		financial products available to the user. Ask them whenever you need recent information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are an economist. You leverage Google Search to ground your assertions, find the
			latest news about interest rates and inflation, and relate them to the user's request.
			`),
		},
	}
}
