package formatter

import (
	"fmt"
	"strings"

	"github.com/minsukang/stagegate/internal/contract"
)

const statusProgressBarWidth = 10

// FormatStatus formats a StatusResponse into a styled CLI dashboard string.
func FormatStatus(resp *contract.StatusResponse) string {
	var b strings.Builder

	headers := []string{"NAME", "MODEL", "S1", "S2", "S3", "OVERALL", "NEXT"}
	rows := make([][]string, 0, len(resp.Projects))

	for _, p := range resp.Projects {
		next := Dim("--")
		if p.OverdueCount > 0 {
			next = StyleRed.Render(fmt.Sprintf("%d overdue", p.OverdueCount))
		} else if p.NextDeadline != nil {
			next = fmt.Sprintf("%s %s",
				p.NextDeadline.Event.Label,
				DDayStyled(p.NextDeadline.DDay, p.NextDeadline.Bucket))
		}

		model := Dim("--")
		if p.ModelName != "" {
			model = StyleFg.Render(p.ModelName)
		}

		rows = append(rows, []string{
			Bold(p.ProjectName),
			model,
			fmt.Sprintf("%3d%%", p.Progress.Stage1),
			fmt.Sprintf("%3d%%", p.Progress.Stage2),
			fmt.Sprintf("%3d%%", p.Progress.Stage3),
			RenderProgress(p.Progress.Overall, statusProgressBarWidth),
			next,
		})
	}

	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	summary := resp.Summary
	parts := []string{
		fmt.Sprintf("%d projects", summary.ProjectCount),
		fmt.Sprintf("avg %d%%", summary.AverageScore),
	}
	if summary.OverdueEvents > 0 {
		parts = append(parts, StyleRed.Render(fmt.Sprintf("%d overdue", summary.OverdueEvents)))
	}
	if summary.DueToday > 0 {
		parts = append(parts, StyleYellow.Render(fmt.Sprintf("%d due today", summary.DueToday)))
	}
	b.WriteString(strings.Join(parts, ", ") + "\n")

	return RenderBox("Status", b.String())
}
