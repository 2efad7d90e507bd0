package formatter

import (
	"fmt"
	"strings"

	"github.com/minsukang/stagegate/internal/contract"
	"github.com/minsukang/stagegate/internal/domain"
)

// FormatCalendar formats classified calendar entries as a milestone list
// grouped by bucket: overdue first, then today, upcoming, completed.
func FormatCalendar(entries []contract.CalendarEntry) string {
	if len(entries) == 0 {
		return Dim("No milestones scheduled.")
	}

	order := []domain.DeadlineBucket{
		domain.BucketOverdue,
		domain.BucketToday,
		domain.BucketUpcoming,
		domain.BucketCompleted,
	}

	var b strings.Builder
	for _, bucket := range order {
		var lines []string
		for _, e := range entries {
			if e.Bucket != bucket {
				continue
			}
			lines = append(lines, formatEntry(e))
		}
		if len(lines) == 0 {
			continue
		}
		b.WriteString(BucketIndicator(bucket) + "\n")
		for _, line := range lines {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func formatEntry(e contract.CalendarEntry) string {
	label := CategoryStyle(e.Event.Category).Render(e.Event.Label)
	return fmt.Sprintf("%s  %s  %s  %s",
		StyleFg.Render(e.Event.Date.Format("2006-01-02")),
		DDayStyled(e.DDay, e.Bucket),
		label,
		Dim(e.Event.ProjectName),
	)
}
