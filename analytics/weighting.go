// Package analytics implements the seal metrics aggregation pipeline:
// weighting, filtering, grouping and KPI derivation over in-memory record
// collections. Data flows one way: records -> filter -> group -> KPIs or
// export. Nothing here touches storage or the presentation layer.
package analytics

// WeightedCount maps a raw seal count and a gap factor to the weighted seal
// count used for billing and progress tracking. No rounding is applied;
// presentation layers round for display only. Out-of-enum factors are a
// caller contract violation (see models.ValidGapFactor).
func WeightedCount(rawCount int, gapFactor float64) float64 {
	return float64(rawCount) * gapFactor
}
