package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/RIDSdiseno/beck-crm/models"
)

// Filename pieces: fixed prefix, minute-granularity timestamp, current-view
// marker. e.g. BECK_sellos_20250829_1730_vista_actual.xlsx
const (
	sealFilePrefix      = "BECK_sellos"
	quotationFilePrefix = "BECK_cotizaciones"
	viewMarker          = "vista_actual"
	stampLayout         = "20060102_1504"
)

// ExportSeals writes the filtered seal view to an xlsx file under dir and
// returns the file path. When the filtered collection is empty nothing is
// written and the returned path is empty: export-what-you-see, and an empty
// view exports nothing.
func ExportSeals(records []models.SealRecord, dir string, now time.Time) (string, error) {
	if len(records) == 0 {
		return "", nil
	}
	table := BuildSealTable(records, SealColumns())
	path := filepath.Join(dir, exportFilename(sealFilePrefix, now))
	if err := writeWorkbook(table, "Sellos", path); err != nil {
		return "", err
	}
	return path, nil
}

// ExportQuotations is the quotation counterpart of ExportSeals.
func ExportQuotations(quotes []models.Quotation, dir string, now time.Time) (string, error) {
	if len(quotes) == 0 {
		return "", nil
	}
	table := BuildQuotationTable(quotes, QuotationColumns())
	path := filepath.Join(dir, exportFilename(quotationFilePrefix, now))
	if err := writeWorkbook(table, "Cotizaciones", path); err != nil {
		return "", err
	}
	return path, nil
}

func exportFilename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.xlsx", prefix, now.Format(stampLayout), viewMarker)
}

// writeWorkbook serializes a rectangular table into a single-sheet workbook.
func writeWorkbook(table [][]any, sheetName, path string) error {
	if err := checkRect(table); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("export: create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFCC33"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})

	for rowIdx, row := range table {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("export: cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("export: set cell %s: %w", cell, err)
			}
			if rowIdx == 0 {
				f.SetCellStyle(sheetName, cell, cell, headerStyle)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}
