package formatter

import (
	"fmt"
	"strings"

	"github.com/minsukang/stagegate/internal/domain"
	"github.com/minsukang/stagegate/internal/engine"
	"github.com/minsukang/stagegate/internal/schema"
)

// FormatProjectList renders the project list table.
func FormatProjectList(projects []*domain.Project, reg schema.Registry) string {
	headers := []string{"ID", "NAME", "MODEL", "PROGRESS", "STATE"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		score := engine.OverallProgress(reg, p)
		state := StyleBlue.Render("active")
		if p.Completed {
			state = StyleGreen.Render("completed")
		}
		model := Dim("--")
		if p.ModelName != "" {
			model = StyleFg.Render(p.ModelName)
		}
		rows = append(rows, []string{
			Dim(p.DisplayID()),
			Bold(p.Name),
			model,
			RenderProgress(score.Overall, 10),
			state,
		})
	}
	return RenderTable(headers, rows)
}

// FormatProjectInspect renders one project's full stage breakdown.
func FormatProjectInspect(p *domain.Project, reg schema.Registry) string {
	score := engine.OverallProgress(reg, p)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Bold(p.Name), Dim("("+p.DisplayID()+")")))
	if p.ModelName != "" {
		b.WriteString(Dim("Model: ") + p.ModelName + "\n")
	}
	b.WriteString(RenderProgress(score.Overall, 20) + "\n\n")

	for _, stage := range domain.AllStages {
		b.WriteString(fmt.Sprintf("%s %s\n",
			StyleHeader.Render(StageTitle(stage)),
			RenderProgress(score.Stage(stage), 10)))

		data := p.Stage(stage)
		for _, f := range reg.Fields(stage) {
			b.WriteString("  " + formatField(f, data) + "\n")
		}
		if data.Notes != "" {
			b.WriteString("  " + Dim("notes: "+data.Notes) + "\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func formatField(f schema.Field, data domain.Stage) string {
	value := data.Value(f.Name)
	display := Dim("--")
	if value != "" {
		display = StyleFg.Render(value)
	}

	marker := " "
	if f.Kind == schema.KindDate {
		if data.IsExecuted(f.Name) {
			marker = StyleGreen.Render("✓")
		} else if value != "" {
			marker = StyleYellow.Render("○")
		}
	} else if value != "" {
		marker = StyleGreen.Render("✓")
	}

	req := ""
	if f.Required {
		req = StyleRed.Render("*")
	}

	return fmt.Sprintf("%s %-22s %s", marker, f.Label+req, display)
}
