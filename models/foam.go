package models

// FoamJointRecord is one executed section of linear foam joint. Foam joints
// are measured in linear meters rather than seal counts; no gap factor
// applies.
type FoamJointRecord struct {
	ID      int     `json:"id"`
	Section string  `json:"tramo"` // e.g. JL-ESP-001
	Floor   string  `json:"piso"`
	Meters  float64 `json:"metros"`
	Crew    string  `json:"cuadrilla"`
	Date    Date    `json:"fecha"`
}

// ValidFoamJoint is the shape check applied on load.
func ValidFoamJoint(f FoamJointRecord) bool {
	return f.ID > 0 &&
		f.Section != "" &&
		f.Floor != "" &&
		f.Meters > 0 &&
		f.Crew != "" &&
		!f.Date.IsZero()
}
