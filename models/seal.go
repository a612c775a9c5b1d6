package models

// Gap factors applied to the raw seal count depending on the measured gap
// width. These are the only values the billing schedule recognizes.
var GapFactors = []float64{1, 1.2, 1.4, 1.8}

// Modular ceiling access factors.
const (
	CeilingNormal     = 1 // F=1 normal access
	CeilingAmerican   = 2 // F=2 American / structured ceiling
	CeilingHardAccess = 3 // F=3 hard ceiling / cable runs
)

// SealRecord is one inspected/installed firestop seal.
type SealRecord struct {
	ID        int    `json:"id"`
	BeckItem  string `json:"itemizadoBeck"`
	SacyrItem string `json:"itemizadoSacyr,omitempty"`

	ExecutionDate Date   `json:"fechaEjecucion"`
	Weekday       string `json:"dia"`

	Floor       string `json:"piso"`
	AxisAlpha   string `json:"ejeAlfabetico,omitempty"`
	AxisNumeric string `json:"ejeNumerico,omitempty"`
	Room        string `json:"recinto,omitempty"`
	SealNumber  string `json:"numeroSello,omitempty"`

	InstallerName string `json:"nombreSellador"`
	PhotoURL      string `json:"fotoUrl,omitempty"`

	SealCount      int     `json:"cantidadSellos"`
	GapCM          float64 `json:"holguraCm"`
	GapFactor      float64 `json:"factorHolgura"`
	ModularCeiling int     `json:"cieloModular"`

	// WeightedSealCount is stored at creation time, not recomputed on read.
	// Invariant: equals SealCount * GapFactor as of the last mutation of
	// either field.
	WeightedSealCount float64 `json:"cantidadSellosConFactor"`

	Notes string `json:"observaciones,omitempty"`
}

// ValidGapFactor reports whether f is one of the enumerated gap factors.
func ValidGapFactor(f float64) bool {
	for _, v := range GapFactors {
		if f == v {
			return true
		}
	}
	return false
}

// ValidModularCeiling reports whether c is one of the ceiling access factors.
func ValidModularCeiling(c int) bool {
	return c == CeilingNormal || c == CeilingAmerican || c == CeilingHardAccess
}

// ModularCeilingLabel renders the export label for a ceiling factor.
func ModularCeilingLabel(c int) string {
	switch c {
	case CeilingNormal:
		return "F=1 Acceso normal"
	case CeilingAmerican:
		return "F=2 Americano / estructurado"
	case CeilingHardAccess:
		return "F=3 Cielo duro / gateras"
	default:
		return ""
	}
}

// ValidSealRecord is the shape check applied to every element loaded from the
// store. Elements failing it are dropped by the loader.
func ValidSealRecord(r SealRecord) bool {
	return r.ID > 0 &&
		r.BeckItem != "" &&
		!r.ExecutionDate.IsZero() &&
		r.Floor != "" &&
		r.InstallerName != "" &&
		r.SealCount > 0 &&
		r.GapCM >= 0 &&
		ValidGapFactor(r.GapFactor) &&
		ValidModularCeiling(r.ModularCeiling)
}
