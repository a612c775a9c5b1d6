package analytics

import (
	"time"

	"github.com/RIDSdiseno/beck-crm/models"
)

// RangePreset is one of the date-range shortcuts offered next to the range
// picker. Presets are resolved to concrete [start, end] pairs relative to a
// reference date before reaching the filter stage; "whole project" clears
// the range entirely.
type RangePreset string

const (
	PresetWholeProject RangePreset = "todo"
	PresetToday        RangePreset = "hoy"
	PresetThisWeek     RangePreset = "semana"
	PresetThisMonth    RangePreset = "mes"
)

// ResolvePreset turns a preset into the inclusive date bounds for the filter
// stage, relative to now. Whole-project returns nil bounds (unspecified
// criterion). Weeks run Sunday through Saturday.
func ResolvePreset(p RangePreset, now time.Time) (from, to *models.Date) {
	today := models.DateOf(now)
	switch p {
	case PresetToday:
		return &today, &today
	case PresetThisWeek:
		start := today.AddDays(-int(now.Weekday()))
		end := start.AddDays(6)
		return &start, &end
	case PresetThisMonth:
		start := models.NewDate(now.Year(), now.Month(), 1)
		end := models.DateOf(start.Time().AddDate(0, 1, -1))
		return &start, &end
	default:
		return nil, nil
	}
}
