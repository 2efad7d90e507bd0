package repository

import (
	"context"
	"testing"
	"time"

	"github.com/minsukang/stagegate/internal/domain"
	"github.com/minsukang/stagegate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteProjectRepo_CreateAndGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	p := testutil.NewTestProject("Widget",
		testutil.WithModelName("W-1000"),
		testutil.WithField(domain.Stage1, "productGroup", "Appliances"),
		testutil.WithDate(domain.Stage1, "launchDate", "2025-04-01", true),
		testutil.WithField(domain.Stage3, "serviceManager", "H. Kim"),
	)
	p.Stage2.Notes = "pilot line shared with W-900"

	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, "W-1000", got.ModelName)
	assert.False(t, got.Completed)
	assert.Equal(t, "Appliances", got.Stage1.Value("productGroup"))
	assert.Equal(t, "2025-04-01", got.Stage1.Value("launchDate"))
	assert.True(t, got.Stage1.IsExecuted("launchDate"))
	assert.Equal(t, "H. Kim", got.Stage3.Value("serviceManager"))
	assert.Equal(t, "pilot line shared with W-900", got.Stage2.Notes)
}

func TestSQLiteProjectRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorContains(t, err, "not found")
}

func TestSQLiteProjectRepo_ListFiltersCompleted(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	active := testutil.NewTestProject("Active")
	done := testutil.NewTestProject("Done", testutil.WithCompleted())
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, done))

	list, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Active", list[0].Name)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLiteProjectRepo_SetFieldUpsertsAndTouches(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	p := testutil.NewTestProject("Widget")
	p.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p.UpdatedAt = p.CreatedAt
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.SetField(ctx, p.ID, domain.Stage2, "pilotProductionDate", "2025-03-01"))
	require.NoError(t, repo.SetField(ctx, p.ID, domain.Stage2, "pilotProductionDate", "2025-03-05"))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", got.Stage2.Value("pilotProductionDate"))
	assert.True(t, got.UpdatedAt.After(p.CreatedAt))
}

func TestSQLiteProjectRepo_SetExecutedPreservesValue(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	p := testutil.NewTestProject("Widget")
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.SetField(ctx, p.ID, domain.Stage1, "launchDate", "2025-04-01"))
	require.NoError(t, repo.SetExecuted(ctx, p.ID, domain.Stage1, "launchDate", true))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-01", got.Stage1.Value("launchDate"))
	assert.True(t, got.Stage1.IsExecuted("launchDate"))

	// Flag without a value is also representable.
	require.NoError(t, repo.SetExecuted(ctx, p.ID, domain.Stage1, "massProductionDate", true))
	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.Stage1.IsExecuted("massProductionDate"))
	assert.False(t, got.Stage1.Filled("massProductionDate"))
}

func TestSQLiteProjectRepo_DeleteCascadesStageData(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)

	p := testutil.NewTestProject("Widget",
		testutil.WithField(domain.Stage1, "productGroup", "TV"))
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.SetNotes(ctx, p.ID, domain.Stage1, "scrap me"))

	require.NoError(t, repo.Delete(ctx, p.ID))

	var n int
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(*) FROM stage_fields WHERE project_id = ?`, p.ID).Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(*) FROM stage_notes WHERE project_id = ?`, p.ID).Scan(&n))
	assert.Zero(t, n)
}
