package export

import (
	"fmt"
	"strings"

	"presubuild/internal/domain/entities"
	"presubuild/internal/infrastructure/media"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	colorSlate  = &props.Color{Red: 15, Green: 23, Blue: 42}
	colorMuted  = &props.Color{Red: 148, Green: 163, Blue: 184}
	colorOrange = &props.Color{Red: 249, Green: 115, Blue: 22}
	colorSteel  = &props.Color{Red: 58, Green: 124, Blue: 165}
	colorGreen  = &props.Color{Red: 52, Green: 199, Blue: 89}
	colorWhite  = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// RenderPDF produces the client-facing quote of a saved budget.
func RenderPDF(b entities.Budget, s entities.BusinessSettings) ([]byte, error) {
	return renderDocument(BuildDocument(b, s))
}

func renderDocument(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(10).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   colorGray,
		}).
		Build()

	m := maroto.New(cfg)

	addBusinessHeader(m, doc)
	addSummaryBlock(m, doc)

	addSectionTitle(m, "1. MANO DE OBRA Y SERVICIOS TÉCNICOS", colorOrange)
	addTable(m, []string{"DESCRIPCIÓN DEL TRABAJO", "UNID.", "CANT.", "UNITARIO", "SUBTOTAL"}, doc.LaborRows, colorOrange)

	if len(doc.MaterialRows) > 0 {
		addSectionTitle(m, "2. MATERIALES E INSUMOS NECESARIOS", colorSteel)
		addTable(m, []string{"MATERIAL / INSUMO", "UNID.", "CANT.", "UNIT. ESTIM.", "SUBTOTAL"}, doc.MaterialRows, colorSteel)
	}

	addTotals(m, doc)
	addNotes(m, doc)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return out.GetBytes(), nil
}

func addBusinessHeader(m core.Maroto, doc Document) {
	cell := &props.Cell{BackgroundColor: colorSlate}

	left := col.New(8)
	if logo := logoComponent(doc.Business.LogoDataURL); logo != nil {
		m.AddRows(row.New(25).Add(
			col.New(3).Add(logo).WithStyle(cell),
			col.New(9).WithStyle(cell),
		))
	}
	left.Add(
		text.New(doc.Business.Name, props.Text{Top: 4, Size: 20, Style: fontstyle.Bold, Color: colorWhite}),
		text.New(strings.ToUpper(doc.Business.Owner), props.Text{Top: 14, Size: 9, Color: colorMuted}),
		text.New(contactLine(doc.Business), props.Text{Top: 20, Size: 8, Color: colorMuted}),
	)

	m.AddRows(row.New(30).Add(
		left.WithStyle(cell),
		col.New(4).Add(
			text.New("COTIZACIÓN PROFESIONAL", props.Text{Top: 4, Size: 12, Style: fontstyle.Bold, Align: align.Right, Color: colorOrange}),
			text.New("EXPEDIENTE: "+doc.BudgetID, props.Text{Top: 14, Size: 10, Align: align.Right, Color: colorWhite}),
		).WithStyle(cell),
	))
	m.AddRows(row.New(6))
}

func contactLine(b BusinessBlock) string {
	parts := make([]string, 0, 3)
	if b.Phone != "" {
		parts = append(parts, "TEL: "+b.Phone)
	}
	if b.Address != "" {
		parts = append(parts, "DIR: "+strings.ToUpper(b.Address))
	}
	if b.Email != "" {
		parts = append(parts, b.Email)
	}
	return strings.Join(parts, " | ")
}

func logoComponent(dataURL string) core.Component {
	if dataURL == "" {
		return nil
	}
	raw, err := media.DecodeDataURL(dataURL)
	if err != nil || len(raw) == 0 {
		return nil
	}
	ext := extension.Png
	if strings.HasPrefix(dataURL, "data:image/jpeg") || strings.HasPrefix(dataURL, "data:image/jpg") {
		ext = extension.Jpg
	}
	return image.NewFromBytes(raw, ext, props.Rect{Center: true, Percent: 85})
}

func addSummaryBlock(m core.Maroto, doc Document) {
	label := props.Text{Size: 11, Style: fontstyle.Bold, Color: colorSlate}
	normal := props.Text{Size: 9, Color: colorSlate}
	right := props.Text{Size: 9, Align: align.Right, Color: colorSlate}

	m.AddRows(row.New(8).Add(col.New(12).Add(text.New("RESUMEN TÉCNICO:", label))))
	m.AddRows(row.New(6).Add(
		col.New(7).Add(text.New("CLIENTE: "+strings.ToUpper(doc.Client.Name), normal)),
		col.New(5).Add(text.New("EMISIÓN: "+doc.IssueDate, right)),
	))
	m.AddRows(row.New(6).Add(
		col.New(7).Add(text.New("TEL: "+doc.Client.Phone, normal)),
		col.New(5).Add(text.New("VALIDEZ HASTA: "+doc.ValidUntil, right)),
	))
	if obs := strings.TrimSpace(doc.Client.Observations); obs != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(text.New("OBSERVACIONES: "+obs, normal))))
	}
	m.AddRows(row.New(4))
}

func addSectionTitle(m core.Maroto, title string, color *props.Color) {
	m.AddRows(row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Top: 2, Size: 10, Style: fontstyle.Bold, Color: color}),
	)))
}

func addTable(m core.Maroto, headers []string, rows []TableRow, headerColor *props.Color) {
	widths := []int{5, 2, 1, 2, 2}
	head := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Color: colorWhite}
	headCell := &props.Cell{BackgroundColor: headerColor}

	hr := row.New(8)
	for i, h := range headers {
		hr.Add(col.New(widths[i]).Add(text.New(h, head)).WithStyle(headCell))
	}
	m.AddRows(hr)

	body := props.Text{Size: 8, Top: 1.5}
	centered := body
	centered.Align = align.Center
	amount := body
	amount.Align = align.Right
	bold := amount
	bold.Style = fontstyle.Bold
	stripe := &props.Cell{BackgroundColor: &props.Color{Red: 248, Green: 250, Blue: 252}}

	for i, r := range rows {
		cols := []core.Col{
			col.New(widths[0]).Add(text.New(r.Description, body)),
			col.New(widths[1]).Add(text.New(r.Unit, centered)),
			col.New(widths[2]).Add(text.New(r.Quantity, centered)),
			col.New(widths[3]).Add(text.New(r.UnitPrice, amount)),
			col.New(widths[4]).Add(text.New(r.Subtotal, bold)),
		}
		if i%2 == 1 {
			for j := range cols {
				cols[j] = cols[j].WithStyle(stripe)
			}
		}
		m.AddRows(row.New(7).Add(cols...))
	}
	m.AddRows(row.New(6))
}

func addTotals(m core.Maroto, doc Document) {
	label := props.Text{Size: 9, Align: align.Right, Color: colorGray}
	for _, t := range doc.Totals {
		m.AddRows(row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(t.Label+":", label)),
			col.New(3).Add(text.New(t.Value, label)),
		))
	}

	totalText := props.Text{Top: 3, Size: 14, Style: fontstyle.Bold, Align: align.Right, Color: colorWhite}
	box := &props.Cell{BackgroundColor: colorGreen}
	m.AddRows(row.New(2))
	m.AddRows(row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL GENERAL:", totalText)).WithStyle(box),
		col.New(3).Add(text.New(doc.Total, totalText)).WithStyle(box),
	))
}

func addNotes(m core.Maroto, doc Document) {
	note := props.Text{Size: 8, Style: fontstyle.Italic, Color: colorGray}
	m.AddRows(row.New(8))
	for _, n := range doc.Notes {
		m.AddRows(row.New(5).Add(col.New(12).Add(text.New(n, note))))
	}
}
