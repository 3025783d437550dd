package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func price(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", value, err)
	}
	return d
}

func TestSupplierStore_Add_AssignsSequentialIDs(t *testing.T) {
	s := NewSupplierStore()

	first, err := s.Add("Aços Brasil Ltda", "São Paulo - SP", "01.234.567/0001-89", "Aço Inox", price(t, "150.00"))
	if err != nil {
		t.Fatalf("Failed to add supplier: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("Expected first id 1, got %d", first.ID)
	}

	second, err := s.Add("Parafusos do Brasil", "Blumenau - SC", "02.345.678/0001-90", "Parafusos M10", price(t, "5.50"))
	if err != nil {
		t.Fatalf("Failed to add supplier: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("Expected second id 2, got %d", second.ID)
	}
}

func TestSupplierStore_Add_InvalidInputLeavesStoreUnchanged(t *testing.T) {
	cases := []struct {
		name     string
		supplier [4]string
		price    string
	}{
		{"empty name", [4]string{"", "Rua A", "123", "Aço"}, "10.00"},
		{"empty address", [4]string{"Empresa", "", "123", "Aço"}, "10.00"},
		{"empty tax id", [4]string{"Empresa", "Rua A", "", "Aço"}, "10.00"},
		{"empty product", [4]string{"Empresa", "Rua A", "123", ""}, "10.00"},
		{"zero price", [4]string{"Empresa", "Rua A", "123", "Aço"}, "0"},
		{"negative price", [4]string{"Empresa", "Rua A", "123", "Aço"}, "-5.00"},
		{"blank name", [4]string{"   ", "Rua A", "123", "Aço"}, "10.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSupplierStore()

			_, err := s.Add(tc.supplier[0], tc.supplier[1], tc.supplier[2], tc.supplier[3], price(t, tc.price))
			if err == nil {
				t.Fatal("Expected validation error, got none")
			}

			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("Expected ValidationError, got %T: %v", err, err)
			}
			if s.Count() != 0 {
				t.Errorf("Expected empty store after failed add, got %d suppliers", s.Count())
			}

			// The counter must not advance on failure
			supplier, err := s.Add("Empresa", "Rua A", "123", "Aço", price(t, "10.00"))
			if err != nil {
				t.Fatalf("Failed to add valid supplier: %v", err)
			}
			if supplier.ID != 1 {
				t.Errorf("Expected id 1 after failed add, got %d", supplier.ID)
			}
		})
	}
}

func TestSupplierStore_IDsNeverReusedAfterRemoval(t *testing.T) {
	s := NewSupplierStore()
	if err := SeedSuppliers(s); err != nil {
		t.Fatalf("Failed to seed suppliers: %v", err)
	}

	if !s.Remove(3) {
		t.Fatal("Expected removal of supplier 3 to succeed")
	}

	supplier, err := s.Add("Nova Empresa", "Curitiba - PR", "04.567.890/0001-92", "Tintas", price(t, "42.00"))
	if err != nil {
		t.Fatalf("Failed to add supplier: %v", err)
	}
	if supplier.ID != 4 {
		t.Errorf("Expected id 4 even after removal, got %d", supplier.ID)
	}
}

func TestSupplierStore_SeedThenAddYieldsID4(t *testing.T) {
	s := NewSupplierStore()
	if err := SeedSuppliers(s); err != nil {
		t.Fatalf("Failed to seed suppliers: %v", err)
	}
	if s.Count() != 3 {
		t.Fatalf("Expected 3 seeded suppliers, got %d", s.Count())
	}

	supplier, err := s.Add("X", "Y", "Z", "Bolts", price(t, "10.0"))
	if err != nil {
		t.Fatalf("Failed to add supplier: %v", err)
	}
	if supplier.ID != 4 {
		t.Errorf("Expected id 4, got %d", supplier.ID)
	}
	if s.Count() != 4 {
		t.Errorf("Expected list length 4, got %d", s.Count())
	}
}

func TestSupplierStore_RemoveUnknownIDIsNoOp(t *testing.T) {
	s := NewSupplierStore()
	if err := SeedSuppliers(s); err != nil {
		t.Fatalf("Failed to seed suppliers: %v", err)
	}

	if s.Remove(999) {
		t.Error("Expected removal of unknown id to report false")
	}
	if s.Count() != 3 {
		t.Errorf("Expected 3 suppliers after no-op removal, got %d", s.Count())
	}
}

func TestSupplierStore_ListPreservesInsertionOrder(t *testing.T) {
	s := NewSupplierStore()
	if err := SeedSuppliers(s); err != nil {
		t.Fatalf("Failed to seed suppliers: %v", err)
	}

	list := s.List()
	expected := []string{"Aços Brasil Ltda", "Parafusos do Brasil", "Indústria de Borracha"}
	for i, name := range expected {
		if list[i].Name != name {
			t.Errorf("Expected supplier %d to be %s, got %s", i, name, list[i].Name)
		}
	}
}

func TestSupplierStore_ListOrderedByPrice(t *testing.T) {
	s := NewSupplierStore()
	if err := SeedSuppliers(s); err != nil {
		t.Fatalf("Failed to seed suppliers: %v", err)
	}

	ordered := s.ListOrderedByPrice()
	expected := []string{"Aços Brasil Ltda", "Indústria de Borracha", "Parafusos do Brasil"}
	for i, name := range expected {
		if ordered[i].Name != name {
			t.Errorf("Expected position %d to be %s, got %s", i, name, ordered[i].Name)
		}
	}

	// Base list keeps its insertion order
	if s.List()[0].Name != "Aços Brasil Ltda" || s.List()[2].Name != "Indústria de Borracha" {
		t.Error("Expected base list to keep insertion order after sorted listing")
	}
}

func TestSupplierStore_ListByProduct(t *testing.T) {
	s := NewSupplierStore()
	if err := SeedSuppliers(s); err != nil {
		t.Fatalf("Failed to seed suppliers: %v", err)
	}

	matches := s.ListByProduct("Aço Inox")
	if len(matches) != 1 {
		t.Fatalf("Expected 1 supplier of Aço Inox, got %d", len(matches))
	}
	if matches[0].Name != "Aços Brasil Ltda" {
		t.Errorf("Expected Aços Brasil Ltda, got %s", matches[0].Name)
	}

	if got := s.ListByProduct("Madeira"); len(got) != 0 {
		t.Errorf("Expected no suppliers of Madeira, got %d", len(got))
	}
}

func TestSupplierStore_FindByID(t *testing.T) {
	s := NewSupplierStore()
	if err := SeedSuppliers(s); err != nil {
		t.Fatalf("Failed to seed suppliers: %v", err)
	}

	supplier, ok := s.FindByID(2)
	if !ok {
		t.Fatal("Expected to find supplier 2")
	}
	if supplier.Name != "Parafusos do Brasil" {
		t.Errorf("Expected Parafusos do Brasil, got %s", supplier.Name)
	}

	if _, ok := s.FindByID(999); ok {
		t.Error("Expected supplier 999 to be absent")
	}
}

func TestValidationError_Message(t *testing.T) {
	s := NewSupplierStore()

	_, err := s.Add("", "Rua A", "123", "Aço", price(t, "10.00"))
	if err == nil {
		t.Fatal("Expected error, got none")
	}
	if !strings.Contains(err.Error(), "name") {
		t.Errorf("Expected error message to name the field, got: %v", err)
	}
}
