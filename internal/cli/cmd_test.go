package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/alexanderramin/housewright/internal/advisor"
	"github.com/alexanderramin/housewright/internal/catalog"
	"github.com/alexanderramin/housewright/internal/db"
	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/alexanderramin/housewright/internal/planner"
	"github.com/alexanderramin/housewright/internal/render"
	"github.com/alexanderramin/housewright/internal/report"
	"github.com/alexanderramin/housewright/internal/repository"
	"github.com/alexanderramin/housewright/internal/service"
	"github.com/alexanderramin/housewright/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

type stubRenderer struct {
	missing bool
	runs    int
}

func (s *stubRenderer) Available() (string, bool) {
	if s.missing {
		return "", false
	}
	return "/opt/blender/blender", true
}

func (s *stubRenderer) OutputPath(dir, name string) string {
	return filepath.Join(dir, name+".glb")
}

func (s *stubRenderer) Run(_ context.Context, _ render.Scene, _ string) error {
	if s.missing {
		return fmt.Errorf("%w: blender", render.ErrRendererUnavailable)
	}
	s.runs++
	return nil
}

// testApp wires a full App backed by an in-memory DB with the model
// disabled, so the advisor answers deterministically.
func testApp(t *testing.T, renderer *stubRenderer) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLitePlanRepo(database)
	synth := planner.New()
	if renderer == nil {
		renderer = &stubRenderer{}
	}

	return &App{
		Plans:   service.NewPlanService(synth, plans, db.NewSQLiteUnitOfWork(database)),
		Render:  service.NewRenderService(plans, renderer, t.TempDir()),
		Status:  service.NewStatusService(database, plans, synth.Catalog(), "", nil, renderer),
		Advisor: advisor.New(nil),
		Catalog: synth.Catalog(),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

// savePlan stores the scenario A plan through the CLI and returns it.
func savePlan(t *testing.T, app *App, name string) *domain.SavedPlan {
	t.Helper()
	_, err := executeCmd(t, app, "plan", "--land", "5", "--family", "4", "--budget", "30L",
		"--orientation", "east", "--name", name)
	require.NoError(t, err)

	plans, err := app.Plans.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	return plans[0]
}

// --- plan ---

func TestPlanCmd_ScenarioA(t *testing.T) {
	app := testApp(t, nil)
	out, err := executeCmd(t, app, "plan", "--land", "5", "--family", "4", "--budget", "3000000", "--orientation", "East")
	require.NoError(t, err)

	assert.Contains(t, out, "3BHK")
	assert.Contains(t, out, "Economy")
	assert.Contains(t, out, "UNDER BUDGET")
	assert.NotContains(t, out, "Saved")

	n, err := app.Plans.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, n, "plan without --save must not persist")
}

func TestPlanCmd_ScenarioB(t *testing.T) {
	app := testApp(t, nil)
	out, err := executeCmd(t, app, "plan", "--land", "7", "--family", "4", "--budget", "50L",
		"--prefs", "Modern design with garden")
	require.NoError(t, err)

	assert.Contains(t, out, "3BHK")
	assert.Contains(t, out, "Premium")
	assert.Contains(t, out, "ON BUDGET")
	assert.Contains(t, out, "garden modern")
	assert.Contains(t, out, "Garden")
	assert.Contains(t, out, "North facing")
}

func TestPlanCmd_ScenarioC_Infeasible(t *testing.T) {
	app := testApp(t, nil)
	_, err := executeCmd(t, app, "plan", "--land", "1", "--family", "10", "--budget", "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not fit on this plot")
	assert.Contains(t, err.Error(), "try more land")
}

func TestPlanCmd_InvalidInput(t *testing.T) {
	app := testApp(t, nil)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero land", []string{"--land", "0", "--family", "4", "--budget", "1000"}, "invalid --land"},
		{"no family", []string{"--land", "5", "--budget", "1000"}, "invalid --family"},
		{"no budget", []string{"--land", "5", "--family", "4"}, "invalid --budget"},
		{"bad orientation", []string{"--land", "5", "--family", "4", "--budget", "1000", "--orientation", "up"}, "invalid --orientation"},
		{"bad amount", []string{"--land", "5", "--family", "4", "--budget", "lots"}, "invalid amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, app, append([]string{"plan"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPlanCmd_InteractiveNeedsTerminal(t *testing.T) {
	app := testApp(t, nil)
	_, err := executeCmd(t, app, "plan", "--interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
}

func TestPlanCmd_JSON(t *testing.T) {
	app := testApp(t, nil)
	out, err := executeCmd(t, app, "plan", "--land", "5", "--family", "4", "--budget", "30L", "--json")
	require.NoError(t, err)

	var plan domain.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, domain.House3BHK, plan.HouseType)
	assert.Equal(t, domain.SumCostLines(plan.CostLines), plan.TotalCost)
	assert.Equal(t, int64(3_000_000), plan.Request.Budget)
}

func TestPlanCmd_SaveDeduplicates(t *testing.T) {
	app := testApp(t, nil)
	args := []string{"plan", "--land", "5", "--family", "4", "--budget", "30L", "--save"}

	out, err := executeCmd(t, app, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved plan")

	out, err = executeCmd(t, app, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Already saved as")

	plans, err := app.Plans.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, plans, 1)
}

// --- plans ---

func TestPlansCmd_ListShowDelete(t *testing.T) {
	app := testApp(t, nil)

	out, err := executeCmd(t, app, "plans", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved plans yet")

	saved := savePlan(t, app, "Riverside")

	out, err = executeCmd(t, app, "plans", "list")
	require.NoError(t, err)
	assert.Contains(t, out, saved.ShortID())
	assert.Contains(t, out, "Riverside")

	out, err = executeCmd(t, app, "plans", "show", saved.ShortID())
	require.NoError(t, err)
	assert.Contains(t, out, "Riverside")
	assert.Contains(t, out, "COST ESTIMATE")

	out, err = executeCmd(t, app, "plans", "show", saved.ShortID(), "--describe")
	require.NoError(t, err)
	assert.Contains(t, out, "OVERVIEW")
	assert.Contains(t, out, "An East-facing 3BHK")
	assert.Contains(t, out, "(offline answer)")

	_, err = executeCmd(t, app, "plans", "show", saved.ShortID(), "--describe", "--json")
	assert.Error(t, err)

	out, err = executeCmd(t, app, "plans", "show", saved.ShortID(), "--json")
	require.NoError(t, err)
	var got domain.SavedPlan
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, saved.Fingerprint, got.Fingerprint)

	out, err = executeCmd(t, app, "plans", "delete", saved.ShortID())
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted plan "+saved.ShortID())

	_, err = executeCmd(t, app, "plans", "show", saved.ShortID())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no saved plan")
}

// --- report ---

func TestReportCmd_PrintsCost(t *testing.T) {
	app := testApp(t, nil)
	saved := savePlan(t, app, "Home")

	out, err := executeCmd(t, app, "report", saved.ShortID(), "--kind", "cost")
	require.NoError(t, err)
	assert.Contains(t, out, "Cost Breakdown Report")
	assert.Contains(t, out, report.Rupees(saved.Plan.TotalCost))
}

func TestReportCmd_WritesAllKinds(t *testing.T) {
	app := testApp(t, nil)
	saved := savePlan(t, app, "Home")
	dir := filepath.Join(t.TempDir(), "reports")

	out, err := executeCmd(t, app, "report", saved.ShortID(), "--kind", "all", "--out", dir)
	require.NoError(t, err)

	for _, k := range report.Kinds {
		path := filepath.Join(dir, report.FileName(k, saved))
		assert.Contains(t, out, "Wrote "+path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

func TestReportCmd_UnknownKind(t *testing.T) {
	app := testApp(t, nil)
	saved := savePlan(t, app, "Home")
	_, err := executeCmd(t, app, "report", saved.ShortID(), "--kind", "glossy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report")
}

// --- render ---

func TestRenderCmd(t *testing.T) {
	r := &stubRenderer{}
	app := testApp(t, r)
	saved := savePlan(t, app, "Home")

	out, err := executeCmd(t, app, "render", saved.ShortID())
	require.NoError(t, err)
	assert.Contains(t, out, "3D model written to")
	assert.Contains(t, out, "house_"+saved.ShortID()+".glb")
	assert.Equal(t, 1, r.runs)
}

func TestRenderCmd_BlenderMissing(t *testing.T) {
	app := testApp(t, &stubRenderer{missing: true})
	saved := savePlan(t, app, "Home")

	_, err := executeCmd(t, app, "render", saved.ShortID())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOUSEWRIGHT_BLENDER")
}

// --- ask ---

func TestAskCmd_OfflineAnswer(t *testing.T) {
	app := testApp(t, nil)
	out, err := executeCmd(t, app, "ask", "what", "will", "it", "cost?")
	require.NoError(t, err)
	assert.Contains(t, out, "Cost:")
	assert.Contains(t, out, "(offline answer)")
}

func TestAskCmd_AboutSavedPlan(t *testing.T) {
	app := testApp(t, nil)
	saved := savePlan(t, app, "Home")

	out, err := executeCmd(t, app, "ask", "--plan", saved.ShortID(), "how much is the estimate?")
	require.NoError(t, err)
	assert.Contains(t, out, report.Rupees(saved.Plan.TotalCost))
}

func TestAskCmd_Errors(t *testing.T) {
	app := testApp(t, nil)

	_, err := executeCmd(t, app, "ask")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a question")

	_, err = executeCmd(t, app, "ask", "--chat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")

	_, err = executeCmd(t, app, "ask", "--plan", "ffffffff", "cost?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no saved plan")
}

// --- catalog & status ---

func TestCatalogCmd(t *testing.T) {
	app := testApp(t, nil)
	out, err := executeCmd(t, app, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "CLASSIFICATION RULES")
	assert.Contains(t, out, "Villa")
}

func TestCatalogCmd_YAMLRoundTrips(t *testing.T) {
	app := testApp(t, nil)
	out, err := executeCmd(t, app, "catalog", "--yaml")
	require.NoError(t, err)

	parsed, err := catalog.ParseYAML([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, app.Catalog.Tables(), parsed.Tables())
}

func TestStatusCmd(t *testing.T) {
	app := testApp(t, nil)
	savePlan(t, app, "Home")

	out, err := executeCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved plans")
	assert.Contains(t, out, "built-in (5 house types)")
	assert.Contains(t, out, "/opt/blender/blender")
	assert.Contains(t, out, "offline")
}
