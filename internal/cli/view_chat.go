package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/housewright/internal/advisor"
	"github.com/alexanderramin/housewright/internal/cli/formatter"
	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// chatView is the multi-turn advisor conversation. Answers come from the
// model when it responds and from the deterministic fallback otherwise.
type chatView struct {
	ctx     context.Context
	advisor advisor.Advisor
	plan    *domain.Plan
	input   textinput.Model

	conv     *advisor.Conversation
	messages []string
	quitting bool
}

// newChatView opens a chat about plan (which may be nil). A non-empty
// question is answered before the view is shown.
func newChatView(ctx context.Context, adv advisor.Advisor, plan *domain.Plan, question string) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Placeholder = "ask about your plan"

	v := &chatView{
		ctx:     ctx,
		advisor: adv,
		plan:    plan,
		input:   ti,
	}
	v.messages = append(v.messages, formatter.FormatChatWelcome(plan))
	if question != "" {
		v.ask(question)
	}
	return v
}

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			v.quitting = true
			return v, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(v.input.Value())
			v.input.Reset()
			if input == "" {
				return v, nil
			}
			return v.handleInput(input)
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) View() string {
	var b strings.Builder
	for _, msg := range v.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	if v.quitting {
		return b.String()
	}
	b.WriteString(formatter.StylePurple.Render("advisor") + formatter.Dim("> "))
	b.WriteString(v.input.View())
	return b.String()
}

func (v *chatView) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q", "quit", "exit":
		v.quitting = true
		return v, tea.Quit
	case "/plan":
		if v.plan == nil {
			v.messages = append(v.messages, formatter.Dim("No plan attached. Start with 'housewright ask --plan <id> --chat'."))
		} else {
			v.messages = append(v.messages, strings.TrimRight(formatter.FormatPlan(v.plan), "\n"))
		}
		return v, nil
	}

	v.ask(input)
	return v, nil
}

// ask records the question and its answer in the transcript.
func (v *chatView) ask(question string) {
	v.messages = append(v.messages, formatter.Dim("You: ")+question)

	var answer *advisor.Advice
	var err error
	if v.conv == nil {
		v.conv, answer, err = v.advisor.StartChat(v.ctx, v.plan, question)
	} else {
		answer, err = v.advisor.NextTurn(v.ctx, v.conv, question)
	}
	if err != nil || answer == nil {
		answer = advisor.Fallback(v.plan, question)
	}
	v.messages = append(v.messages, strings.TrimRight(formatter.FormatAdvice(answer), "\n"))
}
