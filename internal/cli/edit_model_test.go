package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/minsukang/stagegate/internal/domain"
	"github.com/minsukang/stagegate/internal/repository"
	"github.com/minsukang/stagegate/internal/schema"
	"github.com/minsukang/stagegate/internal/service"
	"github.com/minsukang/stagegate/internal/teatest"
	"github.com/minsukang/stagegate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditHarness(t *testing.T) (*App, repository.ProjectRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProjectRepo(database)
	registry := schema.Default()

	app := &App{
		Projects: service.NewProjectService(repo),
		Fields:   service.NewFieldService(repo, testutil.NewTestUoW(database), registry),
		Status:   service.NewStatusService(repo, registry),
		Calendar: service.NewCalendarService(repo, registry),
		Registry: registry,
	}
	return app, repo
}

func startEditor(t *testing.T, app *App, p *domain.Project) *teatest.Driver {
	t.Helper()
	m := newEditModel(app, p)
	t.Cleanup(m.saver.Stop)
	d := teatest.New(t, m)
	d.DrainInit()
	return d
}

func TestEditModel_NavigationAndStageTabs(t *testing.T) {
	ctx := context.Background()
	app, repo := newEditHarness(t)

	p := testutil.NewTestProject("Dishwasher")
	require.NoError(t, repo.Create(ctx, p))

	d := startEditor(t, app, p)

	m := d.Model.(editModel)
	assert.Equal(t, domain.Stage1, m.stage())
	assert.Equal(t, 0, m.cursor)

	d.Press(tea.KeyDown)
	d.Press(tea.KeyDown)
	m = d.Model.(editModel)
	assert.Equal(t, 2, m.cursor)

	d.Press(tea.KeyTab)
	m = d.Model.(editModel)
	assert.Equal(t, domain.Stage2, m.stage())
	assert.Equal(t, 0, m.cursor, "cursor resets on stage switch")

	d.Press(tea.KeyTab)
	d.Press(tea.KeyTab)
	m = d.Model.(editModel)
	assert.Equal(t, domain.Stage1, m.stage(), "tab wraps around")
}

func TestEditModel_EditCommitsValueAndPersists(t *testing.T) {
	ctx := context.Background()
	app, repo := newEditHarness(t)

	p := testutil.NewTestProject("Dryer")
	require.NoError(t, repo.Create(ctx, p))

	d := startEditor(t, app, p)

	// First stage1 field is productGroup.
	d.Press(tea.KeyEnter)
	d.Type("Laundry")
	d.Press(tea.KeyEnter)

	m := d.Model.(editModel)
	assert.False(t, m.editing)
	assert.Equal(t, "Laundry", p.Stage(domain.Stage1).Value("productGroup"))

	// The write is debounced; flush and confirm it landed.
	m.saver.Flush()
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laundry", got.Stage(domain.Stage1).Value("productGroup"))
}

func TestEditModel_EscCancelsWithoutApplying(t *testing.T) {
	ctx := context.Background()
	app, repo := newEditHarness(t)

	p := testutil.NewTestProject("Fridge")
	require.NoError(t, repo.Create(ctx, p))

	d := startEditor(t, app, p)

	d.Press(tea.KeyEnter)
	d.Type("discarded")
	d.Press(tea.KeyEsc)

	m := d.Model.(editModel)
	assert.False(t, m.editing)
	assert.Empty(t, p.Stage(domain.Stage1).Value("productGroup"))
	assert.Equal(t, 0, m.saver.Pending())
}

func TestEditModel_InlineWarningOnOrderingViolation(t *testing.T) {
	ctx := context.Background()
	app, repo := newEditHarness(t)

	p := testutil.NewTestProject("Oven",
		testutil.WithDate(domain.Stage1, "massProductionDate", "2025-06-01", false),
	)
	require.NoError(t, repo.Create(ctx, p))

	d := startEditor(t, app, p)

	// Move to stage2 and edit pilotProductionDate past the mass
	// production ceiling. The value sticks but a warning renders.
	d.Press(tea.KeyTab)
	d.Press(tea.KeyDown)
	d.Press(tea.KeyEnter)
	d.Type("2025-07-01")
	d.Press(tea.KeyEnter)

	m := d.Model.(editModel)
	assert.NotEmpty(t, m.warning)
	assert.Equal(t, "2025-07-01", p.Stage(domain.Stage2).Value("pilotProductionDate"))
	assert.Contains(t, d.View(), "⚠")
}

func TestEditModel_ToggleExecutedOnDateField(t *testing.T) {
	ctx := context.Background()
	app, repo := newEditHarness(t)

	p := testutil.NewTestProject("Vacuum",
		testutil.WithDate(domain.Stage1, "launchDate", "2025-09-01", false),
	)
	require.NoError(t, repo.Create(ctx, p))

	d := startEditor(t, app, p)

	// Move the cursor to launchDate within stage1.
	m := d.Model.(editModel)
	idx := -1
	for i, f := range m.fields() {
		if f.Name == "launchDate" {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	for i := 0; i < idx; i++ {
		d.Press(tea.KeyDown)
	}

	d.Press(tea.KeySpace)
	m = d.Model.(editModel)
	assert.True(t, p.Stage(domain.Stage1).IsExecuted("launchDate"))

	m.saver.Flush()
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.Stage(domain.Stage1).IsExecuted("launchDate"))
}

func TestEditModel_ToggleIgnoredOnPlainField(t *testing.T) {
	ctx := context.Background()
	app, repo := newEditHarness(t)

	p := testutil.NewTestProject("Microwave")
	require.NoError(t, repo.Create(ctx, p))

	d := startEditor(t, app, p)

	// Cursor starts on productGroup, a plain field.
	d.Press(tea.KeySpace)
	m := d.Model.(editModel)
	assert.False(t, p.Stage(domain.Stage1).IsExecuted("productGroup"))
	assert.Equal(t, 0, m.saver.Pending())
}

func TestEditModel_RapidEditsCollapseToOneSave(t *testing.T) {
	ctx := context.Background()
	app, repo := newEditHarness(t)

	p := testutil.NewTestProject("Freezer")
	require.NoError(t, repo.Create(ctx, p))

	d := startEditor(t, app, p)

	// Three quick commits to the same field supersede each other.
	for _, v := range []string{"a", "ab", "abc"} {
		d.Press(tea.KeyEnter)
		// Replace the prior value wholesale.
		m := d.Model.(editModel)
		m.input.SetValue("")
		d.Model = m
		d.Type(v)
		d.Press(tea.KeyEnter)
	}

	m := d.Model.(editModel)
	assert.Equal(t, 1, m.saver.Pending())

	// Flush runs the pending fn on the calling goroutine.
	m.saver.Flush()
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Stage(domain.Stage1).Value("productGroup"))
}

func TestEditModel_QuitSetsQuitting(t *testing.T) {
	ctx := context.Background()
	app, repo := newEditHarness(t)

	p := testutil.NewTestProject("Heater")
	require.NoError(t, repo.Create(ctx, p))

	d := startEditor(t, app, p)

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestEditModel_ViewShowsProjectAndProgress(t *testing.T) {
	ctx := context.Background()
	app, repo := newEditHarness(t)

	p := testutil.NewTestProject("Air Conditioner",
		testutil.WithField(domain.Stage1, "productGroup", "HVAC"),
	)
	require.NoError(t, repo.Create(ctx, p))

	d := startEditor(t, app, p)

	view := d.View()
	assert.Contains(t, view, "Air Conditioner")
	assert.Contains(t, view, "Basic Info")
	assert.Contains(t, view, "HVAC")
}
