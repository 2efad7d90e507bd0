package export

import (
	"strings"
	"testing"
	"time"

	"github.com/minsukang/stagegate/internal/contract"
	"github.com/minsukang/stagegate/internal/domain"
	"github.com/minsukang/stagegate/internal/engine"
	"github.com/stretchr/testify/assert"
)

func sampleEntries() []contract.CalendarEntry {
	return []contract.CalendarEntry{
		{
			Event: engine.Event{
				ID:          "p1_launchDate",
				ProjectID:   "p1",
				ProjectName: "Widget; Mk2",
				ModelName:   "W-2000",
				Stage:       domain.Stage1,
				Field:       "launchDate",
				Label:       "Launch",
				Category:    domain.CategoryLaunch,
				Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			DDay:   14,
			Bucket: domain.BucketUpcoming,
		},
		{
			Event: engine.Event{
				ID:          "p1_massProductionDate",
				ProjectID:   "p1",
				ProjectName: "Widget; Mk2",
				Label:       "Mass Production",
				Category:    domain.CategoryProduction,
				Date:        time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
				Executed:    true,
			},
			DDay:   -17,
			Bucket: domain.BucketCompleted,
		},
	}
}

func TestICal_Envelope(t *testing.T) {
	out := ICal(nil, ICalOptions{CalendarName: "Milestones"})
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Contains(t, out, "X-WR-CALNAME:Milestones")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}

func TestICal_AllDayEvent(t *testing.T) {
	out := ICal(sampleEntries(), ICalOptions{IncludeCompleted: true})
	assert.Contains(t, out, "UID:p1_launchDate@stagegate")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250601")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20250602")
	assert.Contains(t, out, "CATEGORIES:launch")
	// Reserved characters in the project name are escaped.
	assert.Contains(t, out, `SUMMARY:[Widget\; Mk2] Launch`)
}

func TestICal_SkipsCompletedByDefault(t *testing.T) {
	out := ICal(sampleEntries(), ICalOptions{})
	assert.Contains(t, out, "p1_launchDate")
	assert.NotContains(t, out, "p1_massProductionDate")

	all := ICal(sampleEntries(), ICalOptions{IncludeCompleted: true})
	assert.Contains(t, all, "p1_massProductionDate")
}

func TestICal_FoldsLongLines(t *testing.T) {
	entries := sampleEntries()
	entries[0].Event.ProjectName = strings.Repeat("Very Long Project Name ", 8)
	out := ICal(entries, ICalOptions{})

	for _, line := range strings.Split(out, "\r\n") {
		assert.LessOrEqual(t, len(line), 76, "unfolded line: %q", line)
	}
}
