package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/minsukang/stagegate/internal/cli/formatter"
	"github.com/minsukang/stagegate/internal/contract"
	"github.com/minsukang/stagegate/internal/debounce"
	"github.com/minsukang/stagegate/internal/domain"
	"github.com/minsukang/stagegate/internal/engine"
	"github.com/minsukang/stagegate/internal/schema"
)

// saveDelay is how long the editor waits after the last keystroke before
// persisting a field. Rapid consecutive edits to the same field collapse
// into one write.
const saveDelay = 400 * time.Millisecond

type editKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextStage key.Binding
	PrevStage key.Binding
	Edit      key.Binding
	Toggle    key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

func newEditKeyMap() editKeyMap {
	return editKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextStage: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next stage")),
		PrevStage: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev stage")),
		Edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit field")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle executed")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// editModel is the bubbletea model for the interactive field editor. The
// project snapshot is edited in memory; persistence happens through the
// debounced saver so a burst of keystrokes produces a single write.
type editModel struct {
	app     *App
	project *domain.Project
	saver   *debounce.Scheduler
	keys    editKeyMap

	stageIdx int
	cursor   int

	input   textinput.Model
	editing bool

	// warning holds the advisory message for the most recently edited
	// field, keyed to its row so it renders inline.
	warning  string
	warnRow  int
	quitting bool
}

func newEditModel(app *App, p *domain.Project) editModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return editModel{
		app:     app,
		project: p,
		saver:   debounce.NewScheduler(saveDelay),
		keys:    newEditKeyMap(),
		input:   ti,
		warnRow: -1,
	}
}

func (m editModel) stage() domain.StageName {
	return domain.AllStages[m.stageIdx]
}

func (m editModel) fields() []schema.Field {
	return m.app.Registry.Fields(m.stage())
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateEditing(keyMsg)
	}
	return m.updateBrowsing(keyMsg)
}

func (m editModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.fields()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(fields)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.NextStage):
		m.stageIdx = (m.stageIdx + 1) % len(domain.AllStages)
		m.cursor = 0
		m.clearWarning()

	case key.Matches(msg, m.keys.PrevStage):
		m.stageIdx = (m.stageIdx + len(domain.AllStages) - 1) % len(domain.AllStages)
		m.cursor = 0
		m.clearWarning()

	case key.Matches(msg, m.keys.Edit):
		if len(fields) == 0 {
			return m, nil
		}
		f := fields[m.cursor]
		m.editing = true
		m.input.SetValue(m.project.Stage(m.stage()).Value(f.Name))
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Toggle):
		if len(fields) == 0 {
			return m, nil
		}
		if f := fields[m.cursor]; f.Kind == schema.KindDate {
			m.toggleExecuted(f)
		}
	}

	return m, nil
}

func (m editModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		m.commitValue(m.fields()[m.cursor], m.input.Value())
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitValue applies an edit to the in-memory snapshot and queues the
// debounced write. Validation is advisory: the value sticks either way.
func (m *editModel) commitValue(f schema.Field, value string) {
	value = strings.TrimSpace(value)
	stage := m.stage()

	m.clearWarning()
	if v := engine.ValidateDateField(m.app.Registry, m.project, stage, f.Name, value); v != nil {
		m.warning = v.Message
		m.warnRow = m.cursor
	}

	data := m.project.Stage(stage)
	data.Set(f.Name, value)
	m.project.SetStage(stage, data)

	app, projectID := m.app, m.project.ID
	m.saver.Schedule(saveKey(stage, f.Name), func() {
		app.Fields.UpdateField(context.Background(), contract.FieldUpdate{
			ProjectID: projectID,
			Stage:     stage,
			Field:     f.Name,
			Value:     value,
		})
	})
}

func (m *editModel) toggleExecuted(f schema.Field) {
	stage := m.stage()
	data := m.project.Stage(stage)
	executed := !data.IsExecuted(f.Name)
	data.SetExecuted(f.Name, executed)
	m.project.SetStage(stage, data)

	app, projectID := m.app, m.project.ID
	m.saver.Schedule(saveKey(stage, f.Name)+"/executed", func() {
		app.Fields.SetExecuted(context.Background(), projectID, stage, f.Name, executed)
	})
}

func (m *editModel) clearWarning() {
	m.warning = ""
	m.warnRow = -1
}

func saveKey(stage domain.StageName, field string) string {
	return string(stage) + "/" + field
}

// ── rendering ────────────────────────────────────────────────────────────────

func (m editModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	score := engine.OverallProgress(m.app.Registry, m.project)
	b.WriteString(formatter.StyleHeader.Render(m.project.Name))
	if m.project.ModelName != "" {
		b.WriteString(formatter.Dim(" · " + m.project.ModelName))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Overall %s\n\n", formatter.RenderProgress(score.Overall, 24)))

	b.WriteString(m.renderTabs(score))
	b.WriteString("\n\n")

	stage := m.stage()
	data := m.project.Stage(stage)
	for i, f := range m.fields() {
		b.WriteString(m.renderRow(i, f, data))
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("enter edit · space toggle executed · tab switch stage · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m editModel) renderTabs(score engine.Score) string {
	tabs := make([]string, 0, len(domain.AllStages))
	for i, s := range domain.AllStages {
		label := fmt.Sprintf("%s %d%%", domain.StageTitles[s], score.Stage(s))
		if i == m.stageIdx {
			label = formatter.StyleHeader.Render("[" + label + "]")
		} else {
			label = formatter.Dim(" " + label + " ")
		}
		tabs = append(tabs, label)
	}
	return strings.Join(tabs, " ")
}

func (m editModel) renderRow(i int, f schema.Field, data domain.Stage) string {
	var b strings.Builder

	pointer := "  "
	if i == m.cursor {
		pointer = formatter.StyleHeader.Render("❯ ")
	}

	label := f.Label
	if f.Required {
		label += " *"
	}

	value := data.Value(f.Name)
	switch {
	case m.editing && i == m.cursor:
		value = m.input.View()
	case value == "":
		value = formatter.Dim("—")
	}

	marker := ""
	if f.Kind == schema.KindDate {
		if data.IsExecuted(f.Name) {
			marker = " " + formatter.StyleGreen.Render("✓")
		} else {
			marker = " " + formatter.Dim("○")
		}
	}

	b.WriteString(fmt.Sprintf("%s%-28s %s%s\n", pointer, label, value, marker))

	if m.warning != "" && m.warnRow == i {
		b.WriteString("    " + formatter.StyleYellow.Render("⚠ "+m.warning) + "\n")
	}

	return b.String()
}
