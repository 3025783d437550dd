package views

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/purchasing/models"
)

func sampleSuppliers(t *testing.T) []models.Supplier {
	t.Helper()
	return []models.Supplier{
		{ID: 1, Name: "Aços Brasil Ltda", Address: "São Paulo - SP", TaxID: "01.234.567/0001-89", Product: "Aço Inox", Price: dec(t, "150.00")},
		{ID: 2, Name: "Parafusos do Brasil", Address: "Blumenau - SC", TaxID: "02.345.678/0001-90", Product: "Parafusos M10", Price: dec(t, "5.50")},
		{ID: 3, Name: "Indústria de Borracha", Address: "Rio de Janeiro - RJ", TaxID: "03.456.789/0001-91", Product: "Borracha Industrial", Price: dec(t, "85.00")},
	}
}

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", value, err)
	}
	return d
}

func TestSupplierRows_EmptyFilterReturnsAllInOrder(t *testing.T) {
	rows := SupplierRows(sampleSuppliers(t), SupplierFilter{})

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	expected := []string{"Aços Brasil Ltda", "Parafusos do Brasil", "Indústria de Borracha"}
	for i, name := range expected {
		if rows[i].Name != name {
			t.Errorf("Expected row %d to be %s, got %s", i, name, rows[i].Name)
		}
	}
}

func TestSupplierRows_QueryIsCaseInsensitive(t *testing.T) {
	rows := SupplierRows(sampleSuppliers(t), SupplierFilter{Query: "parafusos"})

	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].Name != "Parafusos do Brasil" {
		t.Errorf("Expected Parafusos do Brasil, got %s", rows[0].Name)
	}
}

func TestSupplierRows_QueryMatchesAnyRenderedField(t *testing.T) {
	// Matches the formatted price of supplier 2
	rows := SupplierRows(sampleSuppliers(t), SupplierFilter{Query: "5.50"})
	if len(rows) != 1 || rows[0].ID != 2 {
		t.Fatalf("Expected only supplier 2 by price, got %d rows", len(rows))
	}

	// Matches the address of supplier 3
	rows = SupplierRows(sampleSuppliers(t), SupplierFilter{Query: "rio de janeiro"})
	if len(rows) != 1 || rows[0].ID != 3 {
		t.Fatalf("Expected only supplier 3 by address, got %d rows", len(rows))
	}
}

func TestSupplierRows_ProductFilterComparesOnlyProductField(t *testing.T) {
	suppliers := sampleSuppliers(t)
	// This supplier mentions a product name in its street address; a filter
	// on that product must not match it.
	suppliers = append(suppliers, models.Supplier{
		ID: 4, Name: "Transportes Aço Inox", Address: "Rua Aço Inox, 10",
		TaxID: "04.567.890/0001-92", Product: "Fretes", Price: dec(t, "200.00"),
	})

	rows := SupplierRows(suppliers, SupplierFilter{Product: "Aço Inox"})
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].ID != 1 {
		t.Errorf("Expected supplier 1, got %d", rows[0].ID)
	}
}

func TestSupplierRows_BothPredicatesMustHold(t *testing.T) {
	rows := SupplierRows(sampleSuppliers(t), SupplierFilter{Query: "brasil", Product: "Parafusos M10"})
	if len(rows) != 1 || rows[0].ID != 2 {
		t.Fatalf("Expected only supplier 2, got %d rows", len(rows))
	}

	rows = SupplierRows(sampleSuppliers(t), SupplierFilter{Query: "borracha", Product: "Parafusos M10"})
	if len(rows) != 0 {
		t.Errorf("Expected no rows when predicates disagree, got %d", len(rows))
	}
}

func TestSupplierEmptyMessage(t *testing.T) {
	if msg := SupplierEmptyMessage(false); msg != "Nenhum fornecedor cadastrado" {
		t.Errorf("Unexpected unfiltered message: %s", msg)
	}
	if msg := SupplierEmptyMessage(true); msg != "Nenhum fornecedor encontrado" {
		t.Errorf("Unexpected filtered message: %s", msg)
	}
}

func TestOrderRows_FilterByStatus(t *testing.T) {
	date := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	orders := []models.PurchaseOrder{
		{ID: 1, ItemID: 99, Quantity: 3, UnitPrice: dec(t, "150.00"), TotalValue: dec(t, "450.00"),
			SupplierID: 1, SupplierName: "Aços Brasil Ltda", Status: models.OrderPending, Date: date},
		{ID: 2, ItemID: 10, Quantity: 1, UnitPrice: dec(t, "5.50"), TotalValue: dec(t, "5.50"),
			SupplierID: 2, SupplierName: "Parafusos do Brasil", Status: models.OrderDelivered, Date: date},
	}

	rows := OrderRows(orders, OrderFilter{Status: "PENDING"})
	if len(rows) != 1 || rows[0].ID != 1 {
		t.Fatalf("Expected only order 1, got %d rows", len(rows))
	}
	if rows[0].BadgeClass != "badge-warning" {
		t.Errorf("Expected badge-warning for PENDING, got %s", rows[0].BadgeClass)
	}
	if rows[0].TotalValue != "R$ 450.00" {
		t.Errorf("Expected formatted total R$ 450.00, got %s", rows[0].TotalValue)
	}
	if rows[0].Date != "31/08/2026" {
		t.Errorf("Expected date 31/08/2026, got %s", rows[0].Date)
	}
}

func TestOrderRows_StatusFilterIgnoresSupplierNameField(t *testing.T) {
	date := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	// Supplier name contains the word PENDING; a DELIVERED order from that
	// supplier must not match a PENDING status filter.
	orders := []models.PurchaseOrder{
		{ID: 1, ItemID: 1, Quantity: 1, UnitPrice: dec(t, "1.00"), TotalValue: dec(t, "1.00"),
			SupplierID: 1, SupplierName: "PENDING Logistics", Status: models.OrderDelivered, Date: date},
	}

	rows := OrderRows(orders, OrderFilter{Status: "PENDING"})
	if len(rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(rows))
	}
}

func TestOrderRows_EmptyFilterPreservesOrder(t *testing.T) {
	date := time.Now()
	orders := []models.PurchaseOrder{
		{ID: 1, UnitPrice: dec(t, "1.00"), TotalValue: dec(t, "1.00"), Status: models.OrderPending, Date: date},
		{ID: 2, UnitPrice: dec(t, "2.00"), TotalValue: dec(t, "2.00"), Status: models.OrderPending, Date: date},
		{ID: 3, UnitPrice: dec(t, "3.00"), TotalValue: dec(t, "3.00"), Status: models.OrderPending, Date: date},
	}

	rows := OrderRows(orders, OrderFilter{})
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.ID != i+1 {
			t.Errorf("Expected row %d to have id %d, got %d", i, i+1, row.ID)
		}
	}
}

func TestSupplierOptions(t *testing.T) {
	options := SupplierOptions(sampleSuppliers(t))

	if len(options) != 3 {
		t.Fatalf("Expected 3 options, got %d", len(options))
	}
	if options[0].Label != "Aços Brasil Ltda - Aço Inox" {
		t.Errorf("Unexpected option label: %s", options[0].Label)
	}
	if options[0].ID != 1 {
		t.Errorf("Expected option id 1, got %d", options[0].ID)
	}
}
