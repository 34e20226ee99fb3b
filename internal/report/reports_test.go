package report

import (
	"strings"
	"testing"

	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/alexanderramin/housewright/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func savedPlan(t *testing.T, req domain.PlanRequest) *domain.SavedPlan {
	t.Helper()
	p, err := planner.Synthesize(req)
	require.NoError(t, err)
	return &domain.SavedPlan{ID: "1a2b3c4d-0000-4000-8000-000000000000", Plan: *p}
}

func scenarioB(t *testing.T) *domain.SavedPlan {
	return savedPlan(t, domain.PlanRequest{
		LandCents: 7, FamilySize: 4, Budget: 5_000_000,
		Orientation: domain.North, Preferences: "Modern design with garden",
	})
}

func TestRupees(t *testing.T) {
	cases := map[int64]string{
		0:         "₹0",
		999:       "₹999",
		1000:      "₹1,000",
		100000:    "₹1,00,000",
		2378376:   "₹23,78,376",
		123456789: "₹12,34,56,789",
		-50000:    "-₹50,000",
	}
	for in, want := range cases {
		assert.Equal(t, want, Rupees(in), "Rupees(%d)", in)
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"summary":        KindSummary,
		"Technical":      KindTechnical,
		"cost_breakdown": KindCost,
		" costs ":        KindCost,
		"summary_report": KindSummary,
	} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseKind("floorplan")
	assert.Error(t, err)
}

func TestSummary_ListsEveryRoomAndElevation(t *testing.T) {
	s := scenarioB(t)
	out := Summary(s)

	assert.Contains(t, out, "Plan ID: 1a2b3c4d")
	assert.Contains(t, out, "House Type: 3BHK")
	assert.Contains(t, out, "Land: 7 cents (3049.2 sq ft)")
	assert.Contains(t, out, "Preferences: garden, modern")
	assert.Contains(t, out, "Ground Floor")
	for _, r := range s.Plan.Rooms {
		assert.Contains(t, out, "- "+r.Name+": ")
	}
	assert.Contains(t, out, "Elevation")
	assert.Contains(t, out, "Landscaping")
	assert.Contains(t, out, Rupees(s.Plan.TotalCost))
}

func TestTechnical_FollowsTier(t *testing.T) {
	premium := scenarioB(t)
	require.Equal(t, domain.TierPremium, premium.Plan.Tier)
	out := Technical(&premium.Plan)
	assert.Contains(t, out, "Material Tier: Premium")
	assert.Contains(t, out, "Double-glazed UPVC")
	assert.NotContains(t, out, "Multi-storey")

	economy := savedPlan(t, domain.PlanRequest{LandCents: 5, FamilySize: 4, Budget: 3_000_000, Orientation: domain.East})
	require.Equal(t, domain.TierEconomy, economy.Plan.Tier)
	assert.Contains(t, Technical(&economy.Plan), "Aluminium sliding windows")

	duplex := savedPlan(t, domain.PlanRequest{LandCents: 9, FamilySize: 6, Budget: 8_000_000, Orientation: domain.South})
	require.Equal(t, domain.HouseDuplex, duplex.Plan.HouseType)
	assert.Contains(t, Technical(&duplex.Plan), "Multi-storey")
}

func TestCost_TableMatchesPlanLines(t *testing.T) {
	s := scenarioB(t)
	out := Cost(&s.Plan)

	for _, l := range s.Plan.CostLines {
		assert.Contains(t, out, string(l.Category))
		assert.Contains(t, out, Rupees(l.Amount))
	}
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "₹2,600 per sq ft")
	assert.Contains(t, out, "on budget")
	assert.Contains(t, out, "headroom")

	lines := strings.Split(out, "\n")
	var rows int
	for _, l := range lines {
		if strings.HasSuffix(strings.TrimSpace(l), "%") {
			rows++
		}
	}
	assert.Equal(t, len(s.Plan.CostLines), rows)
}

func TestRenderAndFileName(t *testing.T) {
	s := scenarioB(t)
	for _, k := range Kinds {
		out, err := Render(k, s)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	}
	assert.Equal(t, "cost_1a2b3c4d.txt", FileName(KindCost, s))
}

func TestTable_PlainText(t *testing.T) {
	got := Table(
		[]string{"Category", "Amount"},
		[][]string{{"Structure", "₹9,60,000"}, {"Other", "₹12,000"}},
		TableStyle{}, 1,
	)
	want := "Category   " + "   Amount\n" +
		"---------  ---------\n" +
		"Structure  ₹9,60,000\n" +
		"Other        ₹12,000\n"
	assert.Equal(t, want, got)
	assert.Equal(t, "", Table(nil, [][]string{{"x"}}, TableStyle{}))
}

func TestTable_StyleHooks(t *testing.T) {
	got := Table([]string{"A"}, [][]string{{"xy"}}, TableStyle{
		Header:   func(s string) string { return "<" + s + ">" },
		Rule:     func(s string) string { return "[" + s + "]" },
		RuleChar: "=",
	})
	assert.Equal(t, "<A>\n[==]\nxy\n", got)
}

func TestCost_IsPlainText(t *testing.T) {
	s := scenarioB(t)
	out := Cost(&s.Plan)
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Category")
	assert.Contains(t, out, "Share")
	assert.Contains(t, out, "----")
}
