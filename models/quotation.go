package models

// QuotationStatus is a simple enumerated state. No transition graph is
// enforced: any status is directly settable from any other.
type QuotationStatus string

const (
	QuotationDraft    QuotationStatus = "Borrador"
	QuotationSent     QuotationStatus = "Enviada"
	QuotationAccepted QuotationStatus = "Aceptada"
	QuotationRejected QuotationStatus = "Rechazada"
)

// QuotationStatuses lists every status in display order.
var QuotationStatuses = []QuotationStatus{
	QuotationDraft, QuotationSent, QuotationAccepted, QuotationRejected,
}

// Quotation types.
const (
	QuotationTypeClient      = "Cliente"
	QuotationTypeInternal    = "Interna"
	QuotationTypeService     = "Servicio"
	QuotationTypeMaintenance = "Mantención"
	QuotationTypeOther       = "Otro"
)

// Supported currencies.
const (
	CurrencyCLP = "CLP"
	CurrencyUSD = "USD"
)

// Quotation is a commercial proposal, independent of seal records.
type Quotation struct {
	ID     int    `json:"id"`
	Number int    `json:"numero"`
	Code   string `json:"codigo"` // e.g. BECK-COT-2025-020

	Client  string `json:"cliente"`
	Project string `json:"proyecto"`
	Origin  string `json:"origen"` // e.g. BECK, Directo, Referido
	Type    string `json:"tipo"`

	IssueDate  Date            `json:"fecha"`
	ValidUntil Date            `json:"vigencia"`
	Status     QuotationStatus `json:"estado"`

	Amount   float64 `json:"monto"`
	Currency string  `json:"moneda"`

	Responsible string `json:"responsable"`
	Notes       string `json:"notas,omitempty"`
}

// ValidQuotationStatus reports whether s is an enumerated status.
func ValidQuotationStatus(s QuotationStatus) bool {
	for _, v := range QuotationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ValidQuotationType reports whether t is an enumerated quotation type.
func ValidQuotationType(t string) bool {
	switch t {
	case QuotationTypeClient, QuotationTypeInternal, QuotationTypeService,
		QuotationTypeMaintenance, QuotationTypeOther:
		return true
	}
	return false
}

// ValidCurrency reports whether c is a supported currency.
func ValidCurrency(c string) bool {
	return c == CurrencyCLP || c == CurrencyUSD
}

// ValidQuotation is the shape check applied on load.
func ValidQuotation(q Quotation) bool {
	return q.ID > 0 &&
		q.Number > 0 &&
		q.Code != "" &&
		q.Client != "" &&
		!q.IssueDate.IsZero() &&
		!q.ValidUntil.IsZero() &&
		ValidQuotationStatus(q.Status) &&
		ValidQuotationType(q.Type) &&
		ValidCurrency(q.Currency) &&
		q.Amount >= 0
}
