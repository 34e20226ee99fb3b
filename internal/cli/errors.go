package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/alexanderramin/housewright/internal/render"
	"github.com/alexanderramin/housewright/internal/repository"
)

// fieldFlags maps request field names to the flags that set them.
var fieldFlags = map[string]string{
	"land_area":   "--land",
	"family_size": "--family",
	"budget":      "--budget",
	"orientation": "--orientation",
}

// userError turns engine and store errors into messages a user can act on.
// Unknown errors pass through unchanged.
func userError(err error) error {
	if err == nil {
		return nil
	}

	var invalid *domain.InvalidInputError
	var infeasible *domain.LayoutInfeasibleError
	var internal *domain.InternalConsistencyError

	switch {
	case errors.As(err, &invalid):
		name, ok := fieldFlags[invalid.Field]
		if !ok {
			name = invalid.Field
		}
		return fmt.Errorf("invalid %s %v: expected %s", name, invalid.Value, invalid.Expected)
	case errors.As(err, &infeasible):
		return fmt.Errorf("a %s does not fit on this plot: the rooms on the %s need at least %.0f sq ft but only %.0f sq ft can be built; try more land or a smaller family",
			infeasible.HouseType, floorPhrase(infeasible.Floor), infeasible.RequiredArea, infeasible.AvailableArea)
	case errors.As(err, &internal):
		return fmt.Errorf("internal error in %s, please report it: %s", internal.Component, internal.Detail)
	case errors.Is(err, repository.ErrPlanNotFound):
		return errors.New("no saved plan with that id (see 'housewright plans list')")
	case errors.Is(err, repository.ErrAmbiguousID):
		return errors.New("that id prefix matches more than one plan; type more of it")
	case errors.Is(err, render.ErrRendererUnavailable):
		return errors.New("blender was not found; install it or set HOUSEWRIGHT_BLENDER to its path")
	}
	return err
}

func floorPhrase(floor int) string {
	switch floor {
	case 0:
		return "ground floor"
	case 1:
		return "first floor"
	default:
		return fmt.Sprintf("floor %d", floor)
	}
}
