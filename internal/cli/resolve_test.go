package cli

import (
	"context"
	"testing"

	"github.com/minsukang/stagegate/internal/repository"
	"github.com/minsukang/stagegate/internal/schema"
	"github.com/minsukang/stagegate/internal/service"
	"github.com/minsukang/stagegate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolveHarness(t *testing.T) (*App, repository.ProjectRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProjectRepo(database)
	registry := schema.Default()
	return &App{
		Projects: service.NewProjectService(repo),
		Registry: registry,
	}, repo
}

func TestResolveProjectID(t *testing.T) {
	ctx := context.Background()
	app, repo := newResolveHarness(t)

	a := testutil.NewTestProject("Washer")
	b := testutil.NewTestProject("Dryer")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	t.Run("exact id", func(t *testing.T) {
		got, err := resolveProjectID(ctx, app, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.ID, got)
	})

	t.Run("name case-insensitive", func(t *testing.T) {
		got, err := resolveProjectID(ctx, app, "dryer")
		require.NoError(t, err)
		assert.Equal(t, b.ID, got)
	})

	t.Run("id prefix", func(t *testing.T) {
		got, err := resolveProjectID(ctx, app, a.ID[:8])
		require.NoError(t, err)
		assert.Equal(t, a.ID, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := resolveProjectID(ctx, app, "nonesuch")
		assert.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := resolveProjectID(ctx, app, "")
		assert.Error(t, err)
	})
}

func TestParseStageName(t *testing.T) {
	for _, valid := range []string{"stage1", "stage2", "stage3"} {
		s, err := parseStageName(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(s))
	}

	_, err := parseStageName("stage4")
	assert.Error(t, err)
}
