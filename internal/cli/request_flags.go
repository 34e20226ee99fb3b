package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/spf13/pflag"
)

// requestFlags binds the plan request inputs shared by every command that
// synthesizes a plan.
type requestFlags struct {
	land        float64
	family      int
	budget      rupeeValue
	orientation string
	prefs       string
}

func (f *requestFlags) bind(fs *pflag.FlagSet) {
	fs.Float64Var(&f.land, "land", 0, "Land area in cents (1 cent = 435.6 sq ft)")
	fs.IntVar(&f.family, "family", 0, "Number of people in the household")
	fs.Var(&f.budget, "budget", "Construction budget in rupees: 3000000, 30L or 1.2cr")
	fs.StringVar(&f.orientation, "orientation", string(domain.North), "Plot facing: North, South, East, West, NE, NW, SE or SW")
	fs.StringVar(&f.prefs, "prefs", "", `Free-text preferences, e.g. "modern design with a garden"`)
}

// request assembles a PlanRequest. Range checks are left to the engine so
// the CLI reports exactly what the engine rejects.
func (f *requestFlags) request() (domain.PlanRequest, error) {
	o, err := domain.ParseOrientation(f.orientation)
	if err != nil {
		return domain.PlanRequest{}, err
	}
	return domain.PlanRequest{
		LandCents:   f.land,
		FamilySize:  f.family,
		Budget:      int64(f.budget),
		Orientation: o,
		Preferences: strings.TrimSpace(f.prefs),
	}, nil
}

// rupeeValue is a pflag.Value accepting plain rupees or Indian shorthand.
type rupeeValue int64

func (r *rupeeValue) String() string { return strconv.FormatInt(int64(*r), 10) }
func (r *rupeeValue) Type() string   { return "rupees" }

func (r *rupeeValue) Set(s string) error {
	v, err := ParseRupees(s)
	if err != nil {
		return err
	}
	*r = rupeeValue(v)
	return nil
}

var rupeeUnits = []struct {
	suffix string
	scale  float64
}{
	{"crores", 1e7}, {"crore", 1e7}, {"cr", 1e7},
	{"lakhs", 1e5}, {"lakh", 1e5}, {"lacs", 1e5}, {"lac", 1e5}, {"l", 1e5},
	{"k", 1e3},
}

// ParseRupees reads an amount such as "3000000", "30,00,000", "₹30L",
// "2.5 lakh" or "1.2cr" and returns whole rupees.
func ParseRupees(s string) (int64, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.TrimPrefix(t, "₹")
	t = strings.TrimPrefix(t, "rs.")
	t = strings.TrimPrefix(t, "rs")
	t = strings.TrimSpace(strings.ReplaceAll(t, ",", ""))

	scale := 1.0
	for _, u := range rupeeUnits {
		if strings.HasSuffix(t, u.suffix) {
			t = strings.TrimSpace(strings.TrimSuffix(t, u.suffix))
			scale = u.scale
			break
		}
	}

	v, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid amount %q: use rupees like 3000000, 30L or 1.2cr", s)
	}
	amount := math.Round(v * scale)
	if math.Abs(amount) >= math.MaxInt64 {
		return 0, fmt.Errorf("amount %q is too large", s)
	}
	return int64(amount), nil
}
