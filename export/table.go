// Package export serializes the currently filtered view into a spreadsheet.
// The contract is export-what-you-see: callers hand in the post-filter
// collection and the emitted rows mirror it one to one, in order.
package export

import (
	"fmt"

	"github.com/RIDSdiseno/beck-crm/models"
)

// SealColumn pairs a header label with a per-record value extractor.
type SealColumn struct {
	Header string
	Value  func(models.SealRecord) any
}

// QuotationColumn is the quotation counterpart.
type QuotationColumn struct {
	Header string
	Value  func(models.Quotation) any
}

// SealColumns is the fixed, ordered column set of the seal registry export.
func SealColumns() []SealColumn {
	return []SealColumn{
		{"Itemizado BECK", func(r models.SealRecord) any { return r.BeckItem }},
		{"Itemizado SACYR", func(r models.SealRecord) any { return r.SacyrItem }},
		{"Fecha ejecución", func(r models.SealRecord) any { return r.ExecutionDate.Display() }},
		{"Día", func(r models.SealRecord) any { return r.Weekday }},
		{"Piso", func(r models.SealRecord) any { return r.Floor }},
		{"Eje alfabético", func(r models.SealRecord) any { return r.AxisAlpha }},
		{"Eje numérico", func(r models.SealRecord) any { return r.AxisNumeric }},
		{"Sellador", func(r models.SealRecord) any { return r.InstallerName }},
		{"Recinto", func(r models.SealRecord) any { return r.Room }},
		{"N° sello", func(r models.SealRecord) any { return r.SealNumber }},
		{"Cantidad sellos", func(r models.SealRecord) any { return r.SealCount }},
		{"Holgura (cm)", func(r models.SealRecord) any { return r.GapCM }},
		{"Factor holgura", func(r models.SealRecord) any { return r.GapFactor }},
		{"Cielo modular", func(r models.SealRecord) any { return models.ModularCeilingLabel(r.ModularCeiling) }},
		{"Sellos con factor", func(r models.SealRecord) any { return r.WeightedSealCount }},
		{"Foto (URL)", func(r models.SealRecord) any { return r.PhotoURL }},
		{"Observaciones", func(r models.SealRecord) any { return r.Notes }},
	}
}

// QuotationColumns is the fixed column set of the quotations export.
func QuotationColumns() []QuotationColumn {
	return []QuotationColumn{
		{"N°", func(q models.Quotation) any { return q.Number }},
		{"Código", func(q models.Quotation) any { return q.Code }},
		{"Fecha cotización", func(q models.Quotation) any { return q.IssueDate.Display() }},
		{"Vigencia", func(q models.Quotation) any { return q.ValidUntil.Display() }},
		{"Estado", func(q models.Quotation) any { return string(q.Status) }},
		{"Tipo", func(q models.Quotation) any { return q.Type }},
		{"Cliente", func(q models.Quotation) any { return q.Client }},
		{"Proyecto", func(q models.Quotation) any { return q.Project }},
		{"Origen", func(q models.Quotation) any { return q.Origin }},
		{"Monto", func(q models.Quotation) any { return q.Amount }},
		{"Moneda", func(q models.Quotation) any { return q.Currency }},
		{"Responsable", func(q models.Quotation) any { return q.Responsible }},
		{"Notas", func(q models.Quotation) any { return q.Notes }},
	}
}

// BuildSealTable produces the rectangular table: header row plus one row per
// record, in input order.
func BuildSealTable(records []models.SealRecord, cols []SealColumn) [][]any {
	table := make([][]any, 0, len(records)+1)
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c.Header
	}
	table = append(table, header)
	for _, r := range records {
		row := make([]any, len(cols))
		for i, c := range cols {
			row[i] = c.Value(r)
		}
		table = append(table, row)
	}
	return table
}

// BuildQuotationTable is the quotation counterpart of BuildSealTable.
func BuildQuotationTable(quotes []models.Quotation, cols []QuotationColumn) [][]any {
	table := make([][]any, 0, len(quotes)+1)
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c.Header
	}
	table = append(table, header)
	for _, q := range quotes {
		row := make([]any, len(cols))
		for i, c := range cols {
			row[i] = c.Value(q)
		}
		table = append(table, row)
	}
	return table
}

// checkRect guards against ragged tables before serialization.
func checkRect(table [][]any) error {
	if len(table) == 0 {
		return fmt.Errorf("export: empty table")
	}
	width := len(table[0])
	for i, row := range table {
		if len(row) != width {
			return fmt.Errorf("export: row %d has %d cells, want %d", i, len(row), width)
		}
	}
	return nil
}
