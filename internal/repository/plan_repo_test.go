package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/housewright/internal/db"
	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/alexanderramin/housewright/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLitePlanRepo(db)

	saved := testutil.NewTestSavedPlan(t,
		testutil.NewTestRequest(testutil.WithLand(7), testutil.WithBudget(5_000_000),
			testutil.WithPreferences("Modern design with garden")),
		testutil.WithName("Riverside"))
	require.NoError(t, repo.Create(ctx, saved))

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Riverside", got.Name)
	assert.Equal(t, saved.Fingerprint, got.Fingerprint)
	assert.Equal(t, saved.Plan, got.Plan, "plan must round-trip through the store")
	assert.WithinDuration(t, saved.CreatedAt, got.CreatedAt, time.Millisecond)
	assert.Nil(t, got.RenderedAt)
}

func TestPlanRepo_GetByID_Prefix(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLitePlanRepo(db)

	a := testutil.NewTestSavedPlan(t, testutil.NewTestRequest())
	a.ID = "aaaa1111-0000-0000-0000-000000000000"
	b := testutil.NewTestSavedPlan(t, testutil.NewTestRequest())
	b.ID = "aaaa2222-0000-0000-0000-000000000000"
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetByID(ctx, "aaaa1")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = repo.GetByID(ctx, "aaaa")
	assert.ErrorIs(t, err, ErrAmbiguousID)

	_, err = repo.GetByID(ctx, "bbbb")
	assert.ErrorIs(t, err, ErrPlanNotFound)

	// Wildcards in the prefix are literal.
	_, err = repo.GetByID(ctx, "%")
	assert.ErrorIs(t, err, ErrPlanNotFound)
	_, err = repo.GetByID(ctx, "")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestPlanRepo_GetByFingerprint(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLitePlanRepo(db)

	saved := testutil.NewTestSavedPlan(t, testutil.NewTestRequest())
	require.NoError(t, repo.Create(ctx, saved))

	got, err := repo.GetByFingerprint(ctx, saved.Fingerprint)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)

	_, err = repo.GetByFingerprint(ctx, "bafkreinope")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestPlanRepo_ListNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLitePlanRepo(db)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, cents := range []float64{2, 5, 8} {
		s := testutil.NewTestSavedPlan(t, testutil.NewTestRequest(testutil.WithLand(cents)),
			testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, repo.Create(ctx, s))
	}

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 8.0, all[0].Plan.Request.LandCents)
	assert.Equal(t, 2.0, all[2].Plan.Request.LandCents)
	assert.NotEmpty(t, all[0].Plan.Rooms, "listing loads rooms")

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	two, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestPlanRepo_DeleteCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLitePlanRepo(db)

	saved := testutil.NewTestSavedPlan(t, testutil.NewTestRequest())
	require.NoError(t, repo.Create(ctx, saved))
	require.NoError(t, repo.Delete(ctx, saved.ID))

	_, err := repo.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrPlanNotFound)

	for _, table := range []string{"plan_floors", "plan_rooms", "plan_cost_lines"} {
		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE plan_id = ?`, saved.ID).Scan(&n))
		assert.Zero(t, n, "%s should be cascade-deleted", table)
	}

	assert.ErrorIs(t, repo.Delete(ctx, saved.ID), ErrPlanNotFound)
}

func TestPlanRepo_SetRenderPath(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLitePlanRepo(db)

	saved := testutil.NewTestSavedPlan(t, testutil.NewTestRequest())
	require.NoError(t, repo.Create(ctx, saved))

	at := time.Date(2026, 5, 2, 10, 30, 0, 0, time.UTC)
	require.NoError(t, repo.SetRenderPath(ctx, saved.ID, "/tmp/out/plan.png", at))

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out/plan.png", got.RenderPath)
	require.NotNil(t, got.RenderedAt)
	assert.True(t, at.Equal(*got.RenderedAt))

	assert.ErrorIs(t, repo.SetRenderPath(ctx, "missing", "x", at), ErrPlanNotFound)
}

func TestPlanRepo_WithinTransaction(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	uow := testutil.NewTestUoW(database)

	saved := testutil.NewTestSavedPlan(t, testutil.NewTestRequest())
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLitePlanRepo(tx).Create(ctx, saved)
	})
	require.NoError(t, err)

	got, err := NewSQLitePlanRepo(database).GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.House3BHK, got.Plan.HouseType)
}
