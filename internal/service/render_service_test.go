package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/housewright/internal/render"
	"github.com/alexanderramin/housewright/internal/repository"
	"github.com/alexanderramin/housewright/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	err    error
	scenes []render.Scene
	paths  []string
}

func (f *fakeRenderer) Available() (string, bool) { return "/usr/bin/blender", true }

func (f *fakeRenderer) OutputPath(dir, name string) string {
	return filepath.Join(dir, name+".glb")
}

func (f *fakeRenderer) Run(_ context.Context, s render.Scene, out string) error {
	f.scenes = append(f.scenes, s)
	f.paths = append(f.paths, out)
	return f.err
}

func TestRenderService_RecordsOutput(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	saved := testutil.NewTestSavedPlan(t, testutil.NewTestRequest())
	require.NoError(t, repo.Create(ctx, saved))

	fr := &fakeRenderer{}
	svc := NewRenderService(repo, fr, "/renders")

	path, err := svc.Render(ctx, saved.ShortID())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/renders", "house_"+saved.ShortID()+".glb"), path)
	require.Len(t, fr.scenes, 1)
	assert.Equal(t, "3BHK", fr.scenes[0].HouseType)

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, path, got.RenderPath)
	assert.NotNil(t, got.RenderedAt)
}

func TestRenderService_FailureLeavesPlanUntouched(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	saved := testutil.NewTestSavedPlan(t, testutil.NewTestRequest())
	require.NoError(t, repo.Create(ctx, saved))

	fr := &fakeRenderer{err: render.ErrRendererUnavailable}
	_, err := NewRenderService(repo, fr, t.TempDir()).Render(ctx, saved.ID)
	assert.ErrorIs(t, err, render.ErrRendererUnavailable)

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Empty(t, got.RenderPath)

	_, err = NewRenderService(repo, fr, "").Render(ctx, "nope")
	assert.True(t, errors.Is(err, repository.ErrPlanNotFound))
}
