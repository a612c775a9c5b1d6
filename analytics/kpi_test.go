package analytics

import (
	"math"
	"testing"

	"github.com/RIDSdiseno/beck-crm/models"
)

// Two records, no filter: their weighted sum is 4×1.4 + 8×1.8 = 20.0.
func TestComputeSealKPIs_WeightedSum(t *testing.T) {
	records := []models.SealRecord{
		{ID: 1, BeckItem: "BECK-001", Floor: "Piso 1", InstallerName: "A",
			ExecutionDate: models.NewDate(2025, 11, 10),
			SealCount:     4, GapFactor: 1.4, WeightedSealCount: WeightedCount(4, 1.4)},
		{ID: 2, BeckItem: "BECK-002", Floor: "Piso 2", InstallerName: "B",
			ExecutionDate: models.NewDate(2025, 11, 11),
			SealCount:     8, GapFactor: 1.8, WeightedSealCount: WeightedCount(8, 1.8)},
	}

	filtered := FilterSeals(records, SealFilter{})
	if len(filtered) != 2 {
		t.Fatalf("unfiltered view lost records: %d", len(filtered))
	}

	k := ComputeSealKPIs(filtered)
	if math.Abs(k.TotalWeighted-20.0) > 1e-9 {
		t.Errorf("TotalWeighted = %v, expected 20.0", k.TotalWeighted)
	}
	if k.TotalSeals != 12 {
		t.Errorf("TotalSeals = %d, expected 12", k.TotalSeals)
	}
	if k.DistinctFloors != 2 || k.DistinctInstallers != 2 {
		t.Errorf("distinct counts = %d floors, %d installers", k.DistinctFloors, k.DistinctInstallers)
	}
	if k.AvgSealsPerRecord != 6 {
		t.Errorf("AvgSealsPerRecord = %v, expected 6", k.AvgSealsPerRecord)
	}
}

func TestComputeSealKPIs_EmptyInputZeroGuards(t *testing.T) {
	k := ComputeSealKPIs(nil)

	for name, v := range map[string]float64{
		"AvgSealsPerRecord": k.AvgSealsPerRecord,
		"AvgGapCM":          k.AvgGapCM,
		"AvgGapFactor":      k.AvgGapFactor,
		"TotalWeighted":     k.TotalWeighted,
	} {
		if v != 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s = %v over empty input, expected 0", name, v)
		}
	}
}

// 2 Accepted and 3 Sent yields success rate 2/5 = 40%.
func TestComputeQuotationKPIs_SuccessRate(t *testing.T) {
	var quotes []models.Quotation
	for i := 0; i < 2; i++ {
		quotes = append(quotes, models.Quotation{Status: models.QuotationAccepted})
	}
	for i := 0; i < 3; i++ {
		quotes = append(quotes, models.Quotation{Status: models.QuotationSent})
	}
	// Drafts and rejections stay out of the base.
	quotes = append(quotes,
		models.Quotation{Status: models.QuotationDraft},
		models.Quotation{Status: models.QuotationRejected})

	k := ComputeQuotationKPIs(quotes, models.NewDate(2025, 11, 12))
	if math.Abs(k.SuccessRate-40.0) > 1e-9 {
		t.Errorf("SuccessRate = %v, expected 40", k.SuccessRate)
	}
}

func TestComputeQuotationKPIs_SuccessRateZeroBase(t *testing.T) {
	quotes := []models.Quotation{
		{Status: models.QuotationDraft},
		{Status: models.QuotationRejected},
	}
	k := ComputeQuotationKPIs(quotes, models.NewDate(2025, 11, 12))
	if k.SuccessRate != 0 {
		t.Errorf("SuccessRate = %v with zero base, expected 0", k.SuccessRate)
	}
}

func TestComputeQuotationKPIs_ExpiringSoon(t *testing.T) {
	today := models.NewDate(2025, 11, 12)

	tests := []struct {
		name    string
		expiry  models.Date
		counted bool
	}{
		{"expires today", today, true},
		{"expires in 5 days", today.AddDays(5), true},
		{"expires in exactly 7 days", today.AddDays(7), true},
		{"expires in 9 days", today.AddDays(9), false},
		{"already expired yesterday", today.AddDays(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotes := []models.Quotation{{Status: models.QuotationSent, ValidUntil: tt.expiry}}
			k := ComputeQuotationKPIs(quotes, today)
			if (k.ExpiringSoon == 1) != tt.counted {
				t.Errorf("expiry %s: counted=%v, expected %v", tt.expiry, k.ExpiringSoon == 1, tt.counted)
			}
		})
	}
}

func TestComputeFoamKPIs(t *testing.T) {
	records := []models.FoamJointRecord{
		{ID: 1, Meters: 12.5, Crew: "Equipo espuma 1"},
		{ID: 2, Meters: 8.3, Crew: "Equipo espuma 2"},
		{ID: 3, Meters: 15.1, Crew: "Equipo espuma 1"},
	}
	k := ComputeFoamKPIs(records)
	if math.Abs(k.TotalMeters-35.9) > 1e-9 {
		t.Errorf("TotalMeters = %v, expected 35.9", k.TotalMeters)
	}
	if k.Sections != 3 || k.DistinctCrews != 2 {
		t.Errorf("Sections = %d, DistinctCrews = %d", k.Sections, k.DistinctCrews)
	}
	if math.Abs(k.AvgMetersPerRecord-35.9/3) > 1e-9 {
		t.Errorf("AvgMetersPerRecord = %v", k.AvgMetersPerRecord)
	}
}

func TestComputeFoamKPIs_Empty(t *testing.T) {
	k := ComputeFoamKPIs(nil)
	if k.AvgMetersPerRecord != 0 || k.TotalMeters != 0 {
		t.Errorf("expected zeros, got %+v", k)
	}
}
