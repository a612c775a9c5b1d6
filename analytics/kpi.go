package analytics

import (
	"github.com/RIDSdiseno/beck-crm/models"
)

// ExpiryWindowDays is the horizon for the "expiring soon" quotation KPI.
const ExpiryWindowDays = 7

// SealKPIs are the top-level scalars shown on the registry and dashboard
// views. Every average is defined as 0 over an empty input; indeterminate
// values never propagate.
type SealKPIs struct {
	Records            int
	TotalSeals         int
	TotalWeighted      float64
	DistinctFloors     int
	DistinctInstallers int
	AvgSealsPerRecord  float64
	AvgGapCM           float64
	AvgGapFactor       float64
}

// ComputeSealKPIs derives the seal KPIs from an already-filtered collection.
func ComputeSealKPIs(records []models.SealRecord) SealKPIs {
	k := SealKPIs{Records: len(records)}

	floors := make(map[string]bool)
	installers := make(map[string]bool)
	var gapSum, factorSum float64

	for _, r := range records {
		k.TotalSeals += r.SealCount
		k.TotalWeighted += r.WeightedSealCount
		floors[r.Floor] = true
		installers[r.InstallerName] = true
		gapSum += r.GapCM
		factorSum += r.GapFactor
	}
	k.DistinctFloors = len(floors)
	k.DistinctInstallers = len(installers)

	if k.Records > 0 {
		n := float64(k.Records)
		k.AvgSealsPerRecord = float64(k.TotalSeals) / n
		k.AvgGapCM = gapSum / n
		k.AvgGapFactor = factorSum / n
	}
	return k
}

// QuotationKPIs are the scalar metrics of the quotations view.
type QuotationKPIs struct {
	Total        int
	TotalAmount  float64
	Accepted     int
	Sent         int
	SuccessRate  float64 // percent, Accepted / (Accepted + Sent)
	ExpiringSoon int     // ValidUntil within [today, today+7] inclusive
}

// ComputeQuotationKPIs derives the quotation KPIs relative to today.
func ComputeQuotationKPIs(quotes []models.Quotation, today models.Date) QuotationKPIs {
	k := QuotationKPIs{Total: len(quotes)}
	horizon := today.AddDays(ExpiryWindowDays)

	for _, q := range quotes {
		k.TotalAmount += q.Amount
		switch q.Status {
		case models.QuotationAccepted:
			k.Accepted++
		case models.QuotationSent:
			k.Sent++
		}
		if !q.ValidUntil.Before(today) && !q.ValidUntil.After(horizon) {
			k.ExpiringSoon++
		}
	}
	if base := k.Accepted + k.Sent; base > 0 {
		k.SuccessRate = float64(k.Accepted) / float64(base) * 100
	}
	return k
}

// FoamKPIs summarize linear foam joint progress.
type FoamKPIs struct {
	Sections           int
	TotalMeters        float64
	DistinctCrews      int
	AvgMetersPerRecord float64
}

// ComputeFoamKPIs derives the foam-joint KPIs.
func ComputeFoamKPIs(records []models.FoamJointRecord) FoamKPIs {
	k := FoamKPIs{Sections: len(records)}
	crews := make(map[string]bool)
	for _, r := range records {
		k.TotalMeters += r.Meters
		crews[r.Crew] = true
	}
	k.DistinctCrews = len(crews)
	if k.Sections > 0 {
		k.AvgMetersPerRecord = k.TotalMeters / float64(k.Sections)
	}
	return k
}
