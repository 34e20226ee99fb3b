package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/housewright/internal/service"
)

// FormatStatus renders the installation summary as a boxed key/value list.
func FormatStatus(st *service.SystemStatus) string {
	var b strings.Builder

	last := Dim("never")
	if st.LastSavedAt != nil {
		last = SavedAgo(*st.LastSavedAt)
	}

	llm := StyleDim.Render("○ offline (deterministic answers)")
	if st.LLMAvailable {
		llm = StyleGreen.Render("● reachable")
	}

	renderer := StyleRed.Render("✖ not found")
	if st.RendererPath != "" {
		renderer = StyleGreen.Render("● ") + st.RendererPath
	}

	rows := [][2]string{
		{"Saved plans", fmt.Sprintf("%d", st.PlanCount)},
		{"Last saved", last},
		{"Schema version", fmt.Sprintf("v%d", st.SchemaVersion)},
		{"Catalog", fmt.Sprintf("%s (%d house types)", st.CatalogSource, st.HouseTypes)},
		{"Advisor model", llm},
		{"Blender", renderer},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-15s", r[0])), r[1])
	}
	return RenderBox("housewright status", strings.TrimRight(b.String(), "\n")) + "\n"
}
