package analytics

import (
	"strings"

	"github.com/RIDSdiseno/beck-crm/models"
)

// SealFilter selects seal records. Every zero-valued criterion matches all
// records; specified criteria are combined as a conjunction. The date range
// is inclusive on both ends at day granularity.
type SealFilter struct {
	Floor  string
	From   *models.Date
	To     *models.Date
	Search string
}

// Matches reports whether a single record satisfies the filter.
func (f SealFilter) Matches(r models.SealRecord) bool {
	if f.Floor != "" && r.Floor != f.Floor {
		return false
	}
	if !inRange(r.ExecutionDate, f.From, f.To) {
		return false
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		if !anyContainsFold(q, r.BeckItem, r.SacyrItem, r.InstallerName, r.Room, r.SealNumber) {
			return false
		}
	}
	return true
}

// FilterSeals returns the subset of records satisfying the filter, in input
// order. An empty input yields an empty result, never an error.
func FilterSeals(records []models.SealRecord, f SealFilter) []models.SealRecord {
	out := make([]models.SealRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// QuotationFilter selects quotations. Same conjunction semantics as
// SealFilter; the free-text search covers code, client, project and origin.
type QuotationFilter struct {
	Status string
	Origin string
	Type   string
	From   *models.Date
	To     *models.Date
	Search string
}

// Matches reports whether a single quotation satisfies the filter.
func (f QuotationFilter) Matches(q models.Quotation) bool {
	if f.Status != "" && string(q.Status) != f.Status {
		return false
	}
	if f.Origin != "" && q.Origin != f.Origin {
		return false
	}
	if f.Type != "" && q.Type != f.Type {
		return false
	}
	if !inRange(q.IssueDate, f.From, f.To) {
		return false
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		if !anyContainsFold(s, q.Code, q.Client, q.Project, q.Origin) {
			return false
		}
	}
	return true
}

// FilterQuotations returns the subset of quotations satisfying the filter.
func FilterQuotations(quotes []models.Quotation, f QuotationFilter) []models.Quotation {
	out := make([]models.Quotation, 0, len(quotes))
	for _, q := range quotes {
		if f.Matches(q) {
			out = append(out, q)
		}
	}
	return out
}

// inRange applies the inclusive [from, to] day-granularity check. A nil
// bound matches everything on that side.
func inRange(d models.Date, from, to *models.Date) bool {
	if from != nil && d.Before(*from) {
		return false
	}
	if to != nil && d.After(*to) {
		return false
	}
	return true
}

// anyContainsFold reports whether any candidate contains the query,
// case-insensitively.
func anyContainsFold(query string, candidates ...string) bool {
	q := strings.ToLower(query)
	for _, c := range candidates {
		if c != "" && strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}
