package export

import (
	"bytes"
	"fmt"
	"strings"

	"presubuild/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const historySheet = "Presupuestos"

var historyHeaders = []string{
	"Expediente", "Emisión", "Válido hasta", "Cliente", "Teléfono", "Estado",
	"Mano de obra", "Materiales", "Materiales incluidos", "Descuento %", "Impuestos %", "Total",
}

// RenderBudgetsXLSX writes the budget history as a single-sheet workbook.
// Money cells hold numbers formatted with the business currency.
func RenderBudgetsXLSX(budgets []entities.Budget, s entities.BusinessSettings) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), historySheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	widths := []float64{14, 12, 12, 30, 16, 12, 16, 16, 12, 12, 12, 16}
	for i, w := range widths {
		c, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(historySheet, c, c, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#0F172A"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	numFmt := fmt.Sprintf(`"%s"#,##0.00`, strings.ReplaceAll(s.CurrencySymbol, `"`, ""))
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}

	for i, h := range historyHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(historySheet, cell, h)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(historyHeaders))
	f.SetCellStyle(historySheet, "A1", lastCol+"1", headerStyle)

	for i, b := range budgets {
		r := i + 2
		included := "No"
		if b.MaterialsIncluded {
			included = "Sí"
		}
		values := []any{
			b.ID,
			FormatDate(b.IssueDate),
			FormatDate(b.ValidUntil),
			sanitizeCell(b.Client.Name),
			sanitizeCell(b.Client.Phone),
			string(b.Status),
			b.LaborSubtotal,
			b.MaterialsSubtotal,
			included,
			b.DiscountPercent,
			b.TaxRatePercent,
			b.Total,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r)
			f.SetCellValue(historySheet, cell, v)
		}
		f.SetCellStyle(historySheet, fmt.Sprintf("G%d", r), fmt.Sprintf("H%d", r), moneyStyle)
		f.SetCellStyle(historySheet, fmt.Sprintf("L%d", r), fmt.Sprintf("L%d", r), moneyStyle)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeCell keeps user text from being evaluated as a formula.
func sanitizeCell(s string) string {
	if s != "" && strings.ContainsRune("=+-@", rune(s[0])) {
		return "'" + s
	}
	return s
}
