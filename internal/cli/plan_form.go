package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/housewright/internal/cli/formatter"
	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// orientationChoices is the select order of the facing field.
var orientationChoices = []domain.Orientation{
	domain.North, domain.NorthEast, domain.East, domain.SouthEast,
	domain.South, domain.SouthWest, domain.West, domain.NorthWest,
}

// housewrightHuhTheme returns a huh theme matching the formatter palette.
func housewrightHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// planFormValues holds the form's raw string inputs.
type planFormValues struct {
	land        string
	family      string
	budget      string
	orientation string
	prefs       string
	name        string
	save        bool
}

// formValuesFrom seeds the form with whatever flags were already given.
func formValuesFrom(f *requestFlags, name string, save bool) *planFormValues {
	v := &planFormValues{
		orientation: string(domain.North),
		prefs:       f.prefs,
		name:        name,
		save:        save,
	}
	if f.land > 0 {
		v.land = strconv.FormatFloat(f.land, 'f', -1, 64)
	}
	if f.family > 0 {
		v.family = strconv.Itoa(f.family)
	}
	if f.budget > 0 {
		v.budget = f.budget.String()
	}
	if o, err := domain.ParseOrientation(f.orientation); err == nil {
		v.orientation = string(o)
	}
	return v
}

func newPlanForm(v *planFormValues) *huh.Form {
	options := make([]huh.Option[string], len(orientationChoices))
	for i, o := range orientationChoices {
		options[i] = huh.NewOption(string(o), string(o))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Land area (cents)").
				Placeholder("5").
				Value(&v.land).
				Validate(validateLand),
			huh.NewInput().
				Title("Family size").
				Placeholder("4").
				Value(&v.family).
				Validate(validateFamily),
			huh.NewInput().
				Title("Budget").
				Description("Rupees, or shorthand like 30L or 1.2cr").
				Placeholder("30L").
				Value(&v.budget).
				Validate(validateBudget),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Plot facing").
				Options(options...).
				Value(&v.orientation),
			huh.NewText().
				Title("Preferences").
				Placeholder("modern design with a garden").
				Value(&v.prefs),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save this plan?").
				Value(&v.save),
			huh.NewInput().
				Title("Name (optional)").
				Value(&v.name),
		),
	).WithTheme(housewrightHuhTheme()).WithShowHelp(false)
}

// request converts validated form input. It re-parses rather than trusting
// the validators so a skipped field still fails cleanly.
func (v *planFormValues) request() (domain.PlanRequest, error) {
	land, err := strconv.ParseFloat(strings.TrimSpace(v.land), 64)
	if err != nil {
		return domain.PlanRequest{}, &domain.InvalidInputError{Field: "land_area", Value: v.land, Expected: "a positive number of cents"}
	}
	family, err := strconv.Atoi(strings.TrimSpace(v.family))
	if err != nil {
		return domain.PlanRequest{}, &domain.InvalidInputError{Field: "family_size", Value: v.family, Expected: "an integer >= 1"}
	}
	budget, err := ParseRupees(v.budget)
	if err != nil {
		return domain.PlanRequest{}, &domain.InvalidInputError{Field: "budget", Value: v.budget, Expected: "a positive amount in rupees"}
	}
	o, err := domain.ParseOrientation(v.orientation)
	if err != nil {
		return domain.PlanRequest{}, err
	}
	return domain.PlanRequest{
		LandCents:   land,
		FamilySize:  family,
		Budget:      budget,
		Orientation: o,
		Preferences: strings.TrimSpace(v.prefs),
	}, nil
}

func validateLand(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number of cents")
	}
	return nil
}

func validateFamily(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return fmt.Errorf("enter at least 1")
	}
	return nil
}

func validateBudget(s string) error {
	v, err := ParseRupees(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive amount, e.g. 3000000 or 30L")
	}
	return nil
}
