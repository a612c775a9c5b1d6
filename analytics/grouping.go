package analytics

import (
	"sort"
	"strings"

	"github.com/RIDSdiseno/beck-crm/models"
)

// GroupKeyFunc maps a record to its group key.
type GroupKeyFunc func(models.SealRecord) string

// Common extractors for the report views.
func ByBeckItem(r models.SealRecord) string  { return r.BeckItem }
func BySacyrItem(r models.SealRecord) string { return r.SacyrItem }
func ByFloor(r models.SealRecord) string     { return r.Floor }

// ByInstaller falls back to a placeholder so records without an installer
// still land in a group.
func ByInstaller(r models.SealRecord) string {
	if r.InstallerName == "" {
		return "Sin sellador"
	}
	return r.InstallerName
}

// GroupSummary is one row of a grouped report.
type GroupSummary struct {
	Key           string
	Records       int
	TotalSeals    int
	TotalWeighted float64
	Floors        []string    // distinct floors, first-seen order
	LastWorkDate  models.Date // max execution date, day comparison
}

// JoinedFloors renders the distinct floor list for display.
func (g GroupSummary) JoinedFloors() string {
	return strings.Join(g.Floors, " · ")
}

// GroupSeals partitions records by key and reduces each group to a summary
// row. Rows appear in first-seen key order; grouping is a partition, not a
// sort. Sums are unrounded; display rounding is the presentation layer's
// business.
func GroupSeals(records []models.SealRecord, key GroupKeyFunc) []GroupSummary {
	index := make(map[string]int)
	groups := make([]GroupSummary, 0)
	seenFloor := make(map[string]map[string]bool)

	for _, r := range records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, GroupSummary{Key: k, LastWorkDate: r.ExecutionDate})
			seenFloor[k] = make(map[string]bool)
		}
		g := &groups[i]
		g.Records++
		g.TotalSeals += r.SealCount
		g.TotalWeighted += r.WeightedSealCount
		if r.Floor != "" && !seenFloor[k][r.Floor] {
			seenFloor[k][r.Floor] = true
			g.Floors = append(g.Floors, r.Floor)
		}
		g.LastWorkDate = models.MaxDate(g.LastWorkDate, r.ExecutionDate)
	}
	return groups
}

// SortByTotalSealsDesc orders summaries by raw seal total, descending. The
// sort is stable: ties retain group-discovery order.
func SortByTotalSealsDesc(groups []GroupSummary) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalSeals > groups[j].TotalSeals
	})
}

// SealsPerFloor sums raw seal counts by floor, first-seen floor order.
// Feeds the per-floor dashboard chart.
type FloorTotal struct {
	Floor string
	Value float64
}

func SealsPerFloor(records []models.SealRecord) []FloorTotal {
	index := make(map[string]int)
	out := make([]FloorTotal, 0)
	for _, r := range records {
		i, ok := index[r.Floor]
		if !ok {
			i = len(out)
			index[r.Floor] = i
			out = append(out, FloorTotal{Floor: r.Floor})
		}
		out[i].Value += float64(r.SealCount)
	}
	return out
}

// FoamMetersPerFloor sums executed foam-joint meters by floor.
func FoamMetersPerFloor(records []models.FoamJointRecord) []FloorTotal {
	index := make(map[string]int)
	out := make([]FloorTotal, 0)
	for _, r := range records {
		i, ok := index[r.Floor]
		if !ok {
			i = len(out)
			index[r.Floor] = i
			out = append(out, FloorTotal{Floor: r.Floor})
		}
		out[i].Value += r.Meters
	}
	return out
}

// DistinctFloors lists the floors present in the collection, sorted, for
// filter dropdowns.
func DistinctFloors(records []models.SealRecord) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, r := range records {
		if r.Floor != "" && !seen[r.Floor] {
			seen[r.Floor] = true
			out = append(out, r.Floor)
		}
	}
	sort.Strings(out)
	return out
}
