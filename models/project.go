package models

import "time"

// Project is a construction site ("obra") the contractor works on. Only the
// fields the storage layer validates are required; everything else on a site
// lives in the presentation layer.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Code      string    `json:"codigo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidProject is the shape check applied on load.
func ValidProject(p Project) bool {
	return p.ID != "" && p.Name != "" && !p.CreatedAt.IsZero()
}
