package export

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/minsukang/stagegate/internal/contract"
	"github.com/minsukang/stagegate/internal/domain"
)

// CSVOptions controls the CSV projection.
type CSVOptions struct {
	IncludeCompleted bool
}

var csvHeader = []string{
	"project_id", "project", "model", "stage", "field", "label",
	"date", "executed", "d_day", "bucket",
}

// CSV renders entries as a flat milestone table, one row per event.
func CSV(entries []contract.CalendarEntry, opts CSVOptions) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range entries {
		if !opts.IncludeCompleted && e.Bucket == domain.BucketCompleted {
			continue
		}
		row := []string{
			e.Event.ProjectID,
			e.Event.ProjectName,
			e.Event.ModelName,
			string(e.Event.Stage),
			e.Event.Field,
			e.Event.Label,
			e.Event.Date.Format("2006-01-02"),
			fmt.Sprintf("%t", e.Event.Executed),
			fmt.Sprintf("%d", e.DDay),
			string(e.Bucket),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing csv: %w", err)
	}
	return b.String(), nil
}
