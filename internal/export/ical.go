// Package export holds the pure projectors that turn classified calendar
// entries into interchange formats. They consume the calendar contract
// as-is and never re-derive dates or flags.
package export

import (
	"fmt"
	"strings"

	"github.com/minsukang/stagegate/internal/contract"
	"github.com/minsukang/stagegate/internal/domain"
)

// ICalOptions controls the generated calendar envelope.
type ICalOptions struct {
	CalendarName     string
	IncludeCompleted bool
}

const icalDateLayout = "20060102"

// ICal renders entries as an RFC 5545 calendar of all-day events. One
// VEVENT per entry, UID derived from the event's synthetic id.
func ICal(entries []contract.CalendarEntry, opts ICalOptions) string {
	name := opts.CalendarName
	if name == "" {
		name = "stagegate"
	}

	var b strings.Builder
	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:-//stagegate//milestone calendar//EN")
	writeLine(&b, "X-WR-CALNAME:"+escapeText(name))

	for _, e := range entries {
		if !opts.IncludeCompleted && e.Bucket == domain.BucketCompleted {
			continue
		}
		start := e.Event.Date.Format(icalDateLayout)
		end := e.Event.Date.AddDate(0, 0, 1).Format(icalDateLayout)

		writeLine(&b, "BEGIN:VEVENT")
		writeLine(&b, "UID:"+escapeText(e.Event.ID)+"@stagegate")
		writeLine(&b, "DTSTART;VALUE=DATE:"+start)
		writeLine(&b, "DTEND;VALUE=DATE:"+end)
		writeLine(&b, "SUMMARY:"+escapeText(summaryFor(e)))
		writeLine(&b, "DESCRIPTION:"+escapeText(descriptionFor(e)))
		writeLine(&b, "CATEGORIES:"+escapeText(string(e.Event.Category)))
		writeLine(&b, "END:VEVENT")
	}

	writeLine(&b, "END:VCALENDAR")
	return b.String()
}

func summaryFor(e contract.CalendarEntry) string {
	return fmt.Sprintf("[%s] %s", e.Event.ProjectName, e.Event.Label)
}

func descriptionFor(e contract.CalendarEntry) string {
	parts := []string{
		"Project: " + e.Event.ProjectName,
		"Stage: " + string(e.Event.Stage),
		fmt.Sprintf("Status: %s (D%+d)", e.Bucket, e.DDay),
	}
	if e.Event.ModelName != "" {
		parts = append(parts, "Model: "+e.Event.ModelName)
	}
	return strings.Join(parts, "\n")
}

// escapeText escapes the characters RFC 5545 reserves in text values.
func escapeText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}

// writeLine appends a content line with CRLF termination, folding lines
// longer than 75 octets per RFC 5545.
func writeLine(b *strings.Builder, line string) {
	const limit = 75
	for len(line) > limit {
		b.WriteString(line[:limit])
		b.WriteString("\r\n ")
		line = line[limit:]
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}
