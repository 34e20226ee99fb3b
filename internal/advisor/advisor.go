// Package advisor answers free-form questions about a plan. It asks the
// local model for a Design/Layout/Cost answer and falls back to fixed
// guidance grounded in the plan whenever the model cannot help.
package advisor

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/alexanderramin/housewright/internal/llm"
)

const (
	SourceLLM           = "llm"
	SourceDeterministic = "deterministic"
)

// Advice is one answer, split the way the advisor prompt asks for.
type Advice struct {
	Design string `json:"design"`
	Layout string `json:"layout"`
	Cost   string `json:"cost"`
	Source string `json:"-"`
}

// Text joins the non-empty sections, one per line.
func (a *Advice) Text() string {
	var parts []string
	for _, s := range []struct{ label, body string }{
		{"Design", a.Design}, {"Layout", a.Layout}, {"Cost", a.Cost},
	} {
		if strings.TrimSpace(s.body) != "" {
			parts = append(parts, s.label+": "+strings.TrimSpace(s.body))
		}
	}
	return strings.Join(parts, "\n")
}

func validateAdvice(a Advice) error {
	if strings.TrimSpace(a.Design+a.Layout+a.Cost) == "" {
		return errors.New("advice has no content")
	}
	return nil
}

// Conversation is multi-turn chat state. Messages holds the system prompt
// followed by alternating user and assistant turns.
type Conversation struct {
	Plan     *domain.Plan
	Messages []llm.Message
}

// Advisor answers questions, optionally about a specific plan.
type Advisor interface {
	Ask(ctx context.Context, plan *domain.Plan, question string) (*Advice, error)
	StartChat(ctx context.Context, plan *domain.Plan, question string) (*Conversation, *Advice, error)
	NextTurn(ctx context.Context, conv *Conversation, question string) (*Advice, error)
	// Describe writes a short owner-facing overview of plan.
	Describe(ctx context.Context, plan *domain.Plan) (*Description, error)
}

// Description is a plain-text overview of a plan.
type Description struct {
	Text   string
	Source string
}

type advisor struct {
	client llm.Client
}

// New returns an Advisor. A nil client behaves like a disabled model.
func New(client llm.Client) Advisor {
	if client == nil {
		client = llm.NewOllamaClient(llm.DefaultConfig(), nil)
	}
	return &advisor{client: client}
}

func (a *advisor) Ask(ctx context.Context, plan *domain.Plan, question string) (*Advice, error) {
	if strings.TrimSpace(question) == "" {
		return emptyQuestion(), nil
	}
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAdvise,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt(plan, question),
		JSON:         true,
	})
	if err != nil {
		return Fallback(plan, question), nil
	}
	advice, err := llm.ExtractJSON[Advice](resp.Text, validateAdvice)
	if err != nil {
		return Fallback(plan, question), nil
	}
	advice.Source = SourceLLM
	return &advice, nil
}

func (a *advisor) StartChat(ctx context.Context, plan *domain.Plan, question string) (*Conversation, *Advice, error) {
	conv := &Conversation{
		Plan: plan,
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt + "\n\n" + PlanContext(plan)},
		},
	}
	advice, err := a.NextTurn(ctx, conv, question)
	if err != nil {
		return nil, nil, err
	}
	return conv, advice, nil
}

// NextTurn records the question and the answer in conv, whichever source
// produced the answer, so later turns see the whole exchange.
func (a *advisor) NextTurn(ctx context.Context, conv *Conversation, question string) (*Advice, error) {
	if conv == nil {
		return nil, errors.New("conversation not started")
	}
	if strings.TrimSpace(question) == "" {
		return emptyQuestion(), nil
	}

	conv.Messages = append(conv.Messages, llm.Message{Role: "user", Content: question})
	advice := a.chat(ctx, conv, question)
	conv.Messages = append(conv.Messages, llm.Message{Role: "assistant", Content: advice.Text()})
	return advice, nil
}

func (a *advisor) chat(ctx context.Context, conv *Conversation, question string) *Advice {
	resp, err := a.client.Chat(ctx, llm.ChatRequest{Task: llm.TaskChat, Messages: conv.Messages})
	if err != nil {
		return Fallback(conv.Plan, question)
	}
	advice, err := llm.ExtractJSON[Advice](resp.Text, validateAdvice)
	if err != nil {
		return Fallback(conv.Plan, question)
	}
	advice.Source = SourceLLM
	return &advice
}

func (a *advisor) Describe(ctx context.Context, plan *domain.Plan) (*Description, error) {
	if plan == nil {
		return nil, errors.New("no plan to describe")
	}
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDescribe,
		SystemPrompt: describePrompt,
		UserPrompt:   PlanContext(plan),
	})
	if err != nil {
		return DescribeFallback(plan), nil
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" || strings.HasPrefix(text, "{") {
		return DescribeFallback(plan), nil
	}
	return &Description{Text: text, Source: SourceLLM}, nil
}

func emptyQuestion() *Advice {
	return &Advice{
		Design: "Please ask a clear question about your house plan.",
		Source: SourceDeterministic,
	}
}
