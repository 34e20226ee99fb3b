package formatter

import (
	"strings"

	"github.com/alexanderramin/housewright/internal/advisor"
	"github.com/alexanderramin/housewright/internal/domain"
)

// FormatAdvice renders an advisor answer section by section. Offline
// answers carry a dim source note.
func FormatAdvice(a *advisor.Advice) string {
	var b strings.Builder
	for _, s := range []struct{ label, body string }{
		{"Design", a.Design}, {"Layout", a.Layout}, {"Cost", a.Cost},
	} {
		body := strings.TrimSpace(s.body)
		if body == "" {
			continue
		}
		b.WriteString(StyleBlue.Render(s.label+": ") + body + "\n")
	}
	if a.Source == advisor.SourceDeterministic {
		b.WriteString(Dim("(offline answer)") + "\n")
	}
	return b.String()
}

// FormatChatWelcome opens an advisor chat, naming the plan under discussion.
func FormatChatWelcome(p *domain.Plan) string {
	intro := "Ask about design, room sizes, orientation or cost. /quit to leave."
	if p == nil {
		return Header("Advisor") + "\n" + Dim(intro) + "\n"
	}
	return Header("Advisor") + "\n" +
		Dim("Discussing your "+string(p.HouseType)+" ("+string(p.Request.Orientation)+" facing). ") +
		Dim(intro) + "\n"
}

// FormatDescription renders a plan overview under its own header.
func FormatDescription(d *advisor.Description) string {
	out := "\n" + Header("Overview") + "\n" + strings.TrimSpace(d.Text) + "\n"
	if d.Source == advisor.SourceDeterministic {
		out += Dim("(offline answer)") + "\n"
	}
	return out
}
