package formatter

import (
	"fmt"

	"github.com/minsukang/stagegate/internal/domain"
	"github.com/minsukang/stagegate/internal/engine"
)

// DDayLabel renders a signed day distance the way schedules are read on
// the factory floor: D-7 counts down, D+7 counts up, D-Day is the day.
func DDayLabel(dDay int) string {
	switch {
	case dDay == 0:
		return "D-Day"
	case dDay > 0:
		return fmt.Sprintf("D-%d", dDay)
	default:
		return fmt.Sprintf("D+%d", -dDay)
	}
}

// DDayStyled renders a D-Day label with urgency coloring, using the
// horizon sub-buckets for upcoming dates.
func DDayStyled(dDay int, bucket domain.DeadlineBucket) string {
	text := DDayLabel(dDay)
	switch bucket {
	case domain.BucketOverdue:
		return StyleRed.Render(text)
	case domain.BucketToday:
		return StyleYellow.Render(text)
	case domain.BucketCompleted:
		return StyleGreen.Render(text)
	}
	switch engine.Horizon(dDay) {
	case domain.HorizonImminent:
		return StyleYellow.Render(text)
	case domain.HorizonSoon:
		return StyleFg.Render(text)
	}
	return StyleDim.Render(text)
}

// StageTitle returns the display title for a stage, falling back to the
// raw name.
func StageTitle(stage domain.StageName) string {
	if title, ok := domain.StageTitles[stage]; ok {
		return title
	}
	return string(stage)
}
