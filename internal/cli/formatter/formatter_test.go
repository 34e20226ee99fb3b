package formatter

import (
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/housewright/internal/advisor"
	"github.com/alexanderramin/housewright/internal/catalog"
	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/alexanderramin/housewright/internal/planner"
	"github.com/alexanderramin/housewright/internal/report"
	"github.com/alexanderramin/housewright/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func scenarioA(t *testing.T) *domain.Plan {
	t.Helper()
	p, err := planner.Synthesize(domain.PlanRequest{
		LandCents: 5, FamilySize: 4, Budget: 3_000_000, Orientation: domain.East,
	})
	require.NoError(t, err)
	return p
}

func TestRenderTable_AlignsVisibleWidths(t *testing.T) {
	got := stripANSI(RenderTable(
		[]string{"A", "BB"},
		[][]string{{"x", "1"}, {StyleGreen.Render("yyy"), "22"}},
		1,
	))
	want := "A    BB\n" +
		"───  ──\n" +
		"x     1\n" +
		"yyy  22\n"
	assert.Equal(t, want, got)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, [][]string{{"x"}}))
}

func TestSavedAgoFrom(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"just now", now.Add(-10 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-4 * 24 * time.Hour), "4d ago"},
		{"weeks", now.Add(-21 * 24 * time.Hour), "3w ago"},
		{"old", time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), "Sep 30, 2025"},
		{"future", now.Add(48 * time.Hour), "Mar 12, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SavedAgoFrom(tt.at, now))
		})
	}
}

func TestLandAndFamilyRange(t *testing.T) {
	assert.Equal(t, "(0, 3]", LandRange(catalog.Rule{MinCents: 0, MaxCents: 3}))
	assert.Equal(t, "(6, 10]", LandRange(catalog.Rule{MinCents: 6, MaxCents: 10}))
	assert.Equal(t, "any", LandRange(catalog.Rule{MinCents: 0, MaxCents: math.Inf(1)}))
	assert.Equal(t, "> 10", LandRange(catalog.Rule{MinCents: 10, MaxCents: math.Inf(1)}))

	assert.Equal(t, "1-2", FamilyRange(catalog.Rule{MinFamily: 1, MaxFamily: 2}))
	assert.Equal(t, "5+", FamilyRange(catalog.Rule{MinFamily: 5}))
	assert.Equal(t, "any", FamilyRange(catalog.Rule{MinFamily: 1}))
	assert.Equal(t, "3", FamilyRange(catalog.Rule{MinFamily: 3, MaxFamily: 3}))
}

func TestFormatPlan_ScenarioA(t *testing.T) {
	p := scenarioA(t)
	out := stripANSI(FormatPlan(p))

	assert.Contains(t, out, "3BHK")
	assert.Contains(t, out, "Economy")
	assert.Contains(t, out, "UNDER BUDGET")
	assert.Contains(t, out, "Land 5 cents")
	assert.Contains(t, out, "East facing")
	assert.Contains(t, out, "GROUND FLOOR")
	assert.Contains(t, out, "Master Bedroom")
	assert.Contains(t, out, "COST ESTIMATE")
	assert.Contains(t, out, report.Rupees(p.TotalCost))
	assert.Contains(t, out, report.Rupees(p.Request.Budget-p.TotalCost)+" of headroom")
	assert.NotContains(t, out, "FIRST FLOOR")
}

func TestFormatPlan_MultiStorey(t *testing.T) {
	p, err := planner.Synthesize(domain.PlanRequest{
		LandCents: 9, FamilySize: 6, Budget: 6_000_000, Orientation: domain.North,
	})
	require.NoError(t, err)
	out := stripANSI(FormatPlan(p))
	assert.Contains(t, out, "Duplex")
	assert.Contains(t, out, "GROUND FLOOR")
	assert.Contains(t, out, "FIRST FLOOR")
	assert.Contains(t, out, "Staircase")
}

func TestFormatPlanList(t *testing.T) {
	assert.Contains(t, stripANSI(FormatPlanList(nil)), "No saved plans yet")

	saved := &domain.SavedPlan{
		ID:        "0f1e2d3c-aaaa-bbbb-cccc-000000000000",
		Name:      "Lakeside",
		Plan:      *scenarioA(t),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	out := stripANSI(FormatPlanList([]*domain.SavedPlan{saved}))
	assert.Contains(t, out, "0f1e2d3c")
	assert.NotContains(t, out, "0f1e2d3c-aaaa")
	assert.Contains(t, out, "Lakeside")
	assert.Contains(t, out, "UnderBudget")
	assert.Contains(t, out, "2h ago")
}

func TestFormatSaveResult(t *testing.T) {
	saved := &domain.SavedPlan{ID: "abcdef0123456789", Name: "Home", Plan: *scenarioA(t)}
	assert.Contains(t, stripANSI(FormatSaveResult(saved, false)), "Saved plan abcdef01 (Home)")
	assert.Contains(t, stripANSI(FormatSaveResult(saved, true)), "Already saved as abcdef01")
}

func TestFormatCatalog_Builtin(t *testing.T) {
	out := stripANSI(FormatCatalog(catalog.Default()))
	assert.Contains(t, out, "CLASSIFICATION RULES")
	assert.Contains(t, out, "TEMPLATES")
	for _, ht := range domain.HouseTypes {
		assert.Contains(t, out, string(ht))
	}
	assert.Contains(t, out, "2 Bedroom")
	assert.Contains(t, out, "65% of the plot")
}

func TestFormatStatus(t *testing.T) {
	saved := time.Now().Add(-90 * time.Minute)
	out := stripANSI(FormatStatus(&service.SystemStatus{
		PlanCount:     3,
		LastSavedAt:   &saved,
		SchemaVersion: 2,
		CatalogSource: "built-in",
		HouseTypes:    5,
	}))
	assert.Contains(t, out, "HOUSEWRIGHT STATUS")
	assert.Contains(t, out, "1h ago")
	assert.Contains(t, out, "v2")
	assert.Contains(t, out, "built-in (5 house types)")
	assert.Contains(t, out, "offline")
	assert.Contains(t, out, "not found")

	out = stripANSI(FormatStatus(&service.SystemStatus{LLMAvailable: true, RendererPath: "/usr/bin/blender"}))
	assert.Contains(t, out, "never")
	assert.Contains(t, out, "reachable")
	assert.Contains(t, out, "/usr/bin/blender")
}

func TestFormatAdvice(t *testing.T) {
	out := stripANSI(FormatAdvice(&advisor.Advice{Design: "Open plan.", Cost: "About 30 lakh.", Source: advisor.SourceLLM}))
	assert.Contains(t, out, "Design: Open plan.")
	assert.Contains(t, out, "Cost: About 30 lakh.")
	assert.NotContains(t, out, "Layout:")
	assert.NotContains(t, out, "offline")

	out = stripANSI(FormatAdvice(&advisor.Advice{Layout: "Fine.", Source: advisor.SourceDeterministic}))
	assert.Contains(t, out, "(offline answer)")
}

func TestFormatDescription(t *testing.T) {
	out := stripANSI(FormatDescription(&advisor.Description{Text: " A bright home. ", Source: advisor.SourceDeterministic}))
	assert.Contains(t, out, "OVERVIEW")
	assert.Contains(t, out, "\nA bright home.\n")
	assert.Contains(t, out, "(offline answer)")
}

func TestFormatChatWelcome(t *testing.T) {
	assert.Contains(t, stripANSI(FormatChatWelcome(scenarioA(t))), "Discussing your 3BHK (East facing)")
	assert.NotContains(t, stripANSI(FormatChatWelcome(nil)), "Discussing")
}
