package render

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/alexanderramin/housewright/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gardenPlan(t *testing.T) *domain.Plan {
	t.Helper()
	p, err := planner.Synthesize(domain.PlanRequest{
		LandCents:   7,
		FamilySize:  4,
		Budget:      5_000_000,
		Orientation: domain.North,
		Preferences: "Modern design with garden",
	})
	require.NoError(t, err)
	return p
}

func TestBuildScene(t *testing.T) {
	p := gardenPlan(t)
	s := BuildScene(p)

	assert.Equal(t, "3BHK", s.HouseType)
	assert.Equal(t, "North", s.Orientation)
	assert.True(t, s.Garden)
	assert.False(t, s.Parking)
	assert.Equal(t, p.CountKind(domain.RoomBathroom), s.Bathrooms)
	require.Len(t, s.Floors, len(p.Floors))

	var placed int
	for _, f := range s.Floors {
		limit := 0.0
		for _, fs := range p.Floors {
			if fs.Index == f.Index {
				limit = fs.UsableArea
			}
		}
		for i, r := range f.Rooms {
			assert.GreaterOrEqual(t, r.X, 0.0)
			assert.GreaterOrEqual(t, r.Y, 0.0)
			if i > 0 && r.X > 0 {
				assert.LessOrEqual(t, r.X+r.Width, math.Sqrt(limit)+0.01, "room %s overflows its row", r.Name)
			}
		}
		placed += len(f.Rooms)
	}
	assert.Equal(t, len(p.Rooms), placed)
}

func TestPlaceFloor_WrapsRows(t *testing.T) {
	f := domain.FloorSummary{Index: 0, UsableArea: 400} // 20 ft side
	rooms := []domain.RoomAllocation{
		{Name: "A", Kind: domain.RoomLiving, Width: 12, Length: 10},
		{Name: "B", Kind: domain.RoomKitchen, Width: 10, Length: 8},
		{Name: "C", Kind: domain.RoomDining, Width: 6, Length: 6},
	}
	got := placeFloor(f, rooms)

	require.Len(t, got.Rooms, 3)
	assert.Equal(t, PlacedRoom{Name: "A", Kind: "living", X: 0, Y: 0, Width: 12, Length: 10}, got.Rooms[0])
	assert.Equal(t, 0.0, got.Rooms[1].X, "B wraps to a new row")
	assert.Equal(t, 10.0, got.Rooms[1].Y)
	assert.Equal(t, 10.0, got.Rooms[2].X)
	assert.Equal(t, 10.0, got.Rooms[2].Y)
	assert.Equal(t, 18.0, got.Depth)
	assert.Equal(t, 16.0, got.Width)
}

func TestRunner_Args(t *testing.T) {
	r := NewRunner(Options{Script: "/opt/gen.py", Format: "obj"})
	s := Scene{HouseType: "Duplex", Orientation: "NE", LandCents: 8.6, Bathrooms: 3, Parking: true}

	args := r.Args(s, "/out/a.scene.json", "/out/a.obj")
	assert.Equal(t, []string{
		"-b", "-P", "/opt/gen.py", "--",
		"--land", "9",
		"--orientation", "NE",
		"--house_type", "Duplex",
		"--output", "/out/a.obj",
		"--format", "obj",
		"--bathrooms", "3",
		"--garden", "no",
		"--study_room", "no",
		"--parking", "yes",
		"--balcony", "no",
		"--scene", "/out/a.scene.json",
	}, args)
	assert.Equal(t, filepath.Join("/out", "plan.obj"), r.OutputPath("/out", "plan"))
}

// fakeBlender writes an executable shell script standing in for Blender.
func fakeBlender(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "blender")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

// writeOutput finds the --output argument and writes a file there.
const writeOutput = `out=""; prev=""; for a in "$@"; do if [ "$prev" = "--output" ]; then out="$a"; fi; prev="$a"; done; echo model > "$out"`

func TestRunner_Run_Success(t *testing.T) {
	bin := fakeBlender(t, writeOutput)
	dir := t.TempDir()
	r := NewRunner(Options{Binary: bin, Script: "gen.py", Timeout: 5 * time.Second})

	out := r.OutputPath(dir, "house")
	require.NoError(t, r.Run(context.Background(), BuildScene(gardenPlan(t)), out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "model\n", string(data))

	raw, err := os.ReadFile(filepath.Join(dir, "house.scene.json"))
	require.NoError(t, err)
	var s Scene
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.Equal(t, "3BHK", s.HouseType)
}

func TestRunner_Run_RetriesThenFails(t *testing.T) {
	counter := filepath.Join(t.TempDir(), "attempts")
	bin := fakeBlender(t, `echo x >> "`+counter+`"; echo "Error: bpy crashed" >&2; exit 3`)
	r := NewRunner(Options{Binary: bin, Timeout: 5 * time.Second, MaxRetries: 2})

	err := r.Run(context.Background(), Scene{}, filepath.Join(t.TempDir(), "h.glb"))
	assert.ErrorIs(t, err, ErrRenderFailed)
	assert.Contains(t, err.Error(), "bpy crashed")

	data, readErr := os.ReadFile(counter)
	require.NoError(t, readErr)
	assert.Equal(t, 3, strings.Count(string(data), "x"))
}

func TestRunner_Run_NoOutputIsFailure(t *testing.T) {
	bin := fakeBlender(t, "exit 0")
	r := NewRunner(Options{Binary: bin, Timeout: 5 * time.Second})

	err := r.Run(context.Background(), Scene{}, filepath.Join(t.TempDir(), "h.glb"))
	assert.ErrorIs(t, err, ErrRenderFailed)
}

func TestRunner_Run_Timeout(t *testing.T) {
	bin := fakeBlender(t, "exec sleep 5")
	r := NewRunner(Options{Binary: bin, Timeout: 100 * time.Millisecond})

	start := time.Now()
	err := r.Run(context.Background(), Scene{}, filepath.Join(t.TempDir(), "h.glb"))
	assert.ErrorIs(t, err, ErrRenderTimeout)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestRunner_Unavailable(t *testing.T) {
	r := NewRunner(Options{Binary: "definitely-not-blender-" + t.Name()})
	_, ok := r.Available()
	assert.False(t, ok)

	err := r.Run(context.Background(), Scene{}, filepath.Join(t.TempDir(), "h.glb"))
	assert.ErrorIs(t, err, ErrRendererUnavailable)
}
