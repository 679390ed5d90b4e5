package export

import (
	"regexp"
	"strings"

	"presubuild/internal/domain/entities"
)

// Document is the layout-independent content of a budget quote. Every money
// value is already formatted with the business currency.
type Document struct {
	Business   BusinessBlock
	BudgetID   string
	IssueDate  string
	ValidUntil string
	Status     string
	Client     entities.ClientInfo

	LaborRows    []TableRow
	MaterialRows []TableRow
	Totals       []TotalLine
	Total        string
	Notes        []string
}

type BusinessBlock struct {
	Name    string
	Owner   string
	Email   string
	Phone   string
	Address string
	// LogoDataURL is empty when no logo is configured.
	LogoDataURL string
}

type TableRow struct {
	Description string
	Unit        string
	Quantity    string
	UnitPrice   string
	Subtotal    string
}

type TotalLine struct {
	Label string
	Value string
}

const (
	noteScope           = "Nota: Esta cotización contempla solo lo detallado en las tablas superiores."
	noteClientMaterials = "* Los materiales quedan a cargo exclusivo del cliente/comitente."
	defaultBusinessName = "MI EMPRESA"
)

// BuildDocument lays out a saved budget. The stored subtotals and total are
// used as is.
func BuildDocument(b entities.Budget, s entities.BusinessSettings) Document {
	cur := s.CurrencySymbol
	name := strings.TrimSpace(s.BusinessName)
	if name == "" {
		name = defaultBusinessName
	}

	doc := Document{
		Business: BusinessBlock{
			Name:        strings.ToUpper(name),
			Owner:       s.OwnerName,
			Email:       s.Email,
			Phone:       s.Phone,
			Address:     s.Address,
			LogoDataURL: s.LogoImage,
		},
		BudgetID:   b.ID,
		IssueDate:  FormatDate(b.IssueDate),
		ValidUntil: FormatDate(b.ValidUntil),
		Status:     string(b.Status),
		Client:     b.Client,
	}

	for _, l := range b.LaborItems {
		doc.LaborRows = append(doc.LaborRows, TableRow{
			Description: strings.ToUpper(l.Name),
			Unit:        strings.ToUpper(string(l.Unit)),
			Quantity:    FormatQuantity(l.Quantity),
			UnitPrice:   FormatMoney(cur, l.UnitPrice),
			Subtotal:    FormatMoney(cur, l.LineTotal),
		})
	}
	for _, m := range b.Materials {
		doc.MaterialRows = append(doc.MaterialRows, TableRow{
			Description: strings.ToUpper(m.Name),
			Unit:        strings.ToUpper(m.Unit),
			Quantity:    FormatQuantity(m.Quantity),
			UnitPrice:   FormatMoney(cur, m.UnitPrice),
			Subtotal:    FormatMoney(cur, m.LineTotal),
		})
	}

	t := b.Breakdown()
	materialsLabel := "TOTAL MATERIALES (No Incluidos)"
	if b.MaterialsIncluded {
		materialsLabel = "TOTAL MATERIALES (Incluidos)"
	}
	doc.Totals = []TotalLine{
		{Label: "TOTAL MANO DE OBRA", Value: FormatMoney(cur, t.LaborSubtotal)},
		{Label: materialsLabel, Value: FormatMoney(cur, t.MaterialsSubtotal)},
	}
	if b.DiscountPercent > 0 {
		doc.Totals = append(doc.Totals, TotalLine{
			Label: "DESCUENTO GLOBAL (" + FormatPercent(b.DiscountPercent) + ")",
			Value: "-" + FormatMoney(cur, t.DiscountAmount),
		})
	}
	if b.TaxRatePercent > 0 {
		doc.Totals = append(doc.Totals, TotalLine{
			Label: "IMPUESTOS (" + FormatPercent(b.TaxRatePercent) + ")",
			Value: FormatMoney(cur, t.TaxAmount),
		})
	}
	if b.ManualAdjustment != 0 {
		doc.Totals = append(doc.Totals, TotalLine{
			Label: "AJUSTE",
			Value: FormatMoney(cur, -b.ManualAdjustment),
		})
	}
	doc.Total = FormatMoney(cur, b.Total)

	doc.Notes = []string{noteScope}
	if b.ClientSuppliesMaterials {
		doc.Notes = append(doc.Notes, noteClientMaterials)
	}
	return doc
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// PDFFileName names the downloaded quote, e.g. PresuBuild_OBRA-12345_juan-perez.pdf.
func PDFFileName(b entities.Budget) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(foldAccents(b.Client.Name)), "-"), "-")
	if slug == "" {
		return "PresuBuild_" + b.ID + ".pdf"
	}
	return "PresuBuild_" + b.ID + "_" + slug + ".pdf"
}

var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

func foldAccents(s string) string {
	return accentFolder.Replace(s)
}
