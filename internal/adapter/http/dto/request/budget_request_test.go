package request

import (
	"encoding/json"
	"testing"

	"presubuild/internal/domain/entities"
)

func TestNumberString_UnmarshalJSON(t *testing.T) {
	var m MaterialRequest
	if err := json.Unmarshal([]byte(`{"name":"Cemento","quantity":10,"unitPrice":"1.500,50"}`), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Quantity != "10" || m.UnitPrice != "1.500,50" {
		t.Fatalf("unexpected material: %+v", m)
	}

	if err := json.Unmarshal([]byte(`{"quantity":null,"unitPrice":2.5}`), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Quantity != "" || m.UnitPrice != "2.5" {
		t.Fatalf("unexpected material: %+v", m)
	}

	if err := json.Unmarshal([]byte(`{"quantity":true}`), &m); err == nil {
		t.Fatalf("expected error for boolean quantity")
	}
}

func TestBudgetDraftRequest_ToDraft(t *testing.T) {
	price := 1200.0
	r := BudgetDraftRequest{
		Client: ClientRequest{Name: "  Juan Perez ", Phone: " 11 5555-0000 "},
		LaborItems: []LaborItemRequest{
			{CatalogItemID: " c1 ", Quantity: 2},
			{CatalogItemID: "c2", Name: " Pintura ", Unit: "m²", Quantity: 10, UnitPrice: &price},
		},
		Materials:       []MaterialRequest{{Name: "Arena", Quantity: "3", Unit: "bolsa", UnitPrice: "50"}},
		DiscountPercent: 10,
	}

	d := r.ToDraft()
	if d.Client.Name != "Juan Perez" || d.Client.Phone != "11 5555-0000" {
		t.Fatalf("unexpected client: %+v", d.Client)
	}
	if !d.MaterialsIncluded {
		t.Fatalf("materials should default to included")
	}
	if len(d.LaborItems) != 2 || d.LaborItems[0].CatalogItemID != "c1" {
		t.Fatalf("unexpected labor items: %+v", d.LaborItems)
	}
	if d.LaborItems[1].Name != "Pintura" || d.LaborItems[1].Unit != entities.UnitSquareMeter || *d.LaborItems[1].UnitPrice != 1200 {
		t.Fatalf("unexpected snapshot line: %+v", d.LaborItems[1])
	}
	if len(d.Materials) != 1 || d.Materials[0].Quantity != "3" || d.Materials[0].UnitPrice != "50" {
		t.Fatalf("unexpected materials: %+v", d.Materials)
	}
	if d.TaxRatePercent != nil || d.ValidityDays != nil {
		t.Fatalf("optional fields should stay unset")
	}

	excluded := false
	r.MaterialsIncluded = &excluded
	if r.ToDraft().MaterialsIncluded {
		t.Fatalf("expected materials excluded")
	}
}

func TestCatalogItemRequest_ToEntity(t *testing.T) {
	item := CatalogItemRequest{Name: "Revoque", UnitPrice: 800, Unit: " m² ", Category: "Albañilería"}.ToEntity(" c1 ")
	if item.ID != "c1" || item.Unit != entities.UnitSquareMeter || item.UnitPrice != 800 {
		t.Fatalf("unexpected item: %+v", item)
	}
}
