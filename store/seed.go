package store

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type supplierSeed struct {
	name    string
	address string
	taxID   string
	product string
	price   string
}

// Initial suppliers loaded at startup. Ids 1 to 3; the next id is 4.
var supplierSeeds = []supplierSeed{
	{"Aços Brasil Ltda", "São Paulo - SP", "01.234.567/0001-89", "Aço Inox", "150.00"},
	{"Parafusos do Brasil", "Blumenau - SC", "02.345.678/0001-90", "Parafusos M10", "5.50"},
	{"Indústria de Borracha", "Rio de Janeiro - RJ", "03.456.789/0001-91", "Borracha Industrial", "85.00"},
}

// SeedSuppliers loads the sample suppliers into an empty store
func SeedSuppliers(s *SupplierStore) error {
	if s.Count() > 0 {
		return fmt.Errorf("seed requires an empty supplier store, have %d suppliers", s.Count())
	}
	for _, seed := range supplierSeeds {
		price, err := decimal.NewFromString(seed.price)
		if err != nil {
			return fmt.Errorf("invalid seed price for %s: %w", seed.name, err)
		}
		if _, err := s.Add(seed.name, seed.address, seed.taxID, seed.product, price); err != nil {
			return fmt.Errorf("failed to seed supplier %s: %w", seed.name, err)
		}
	}
	return nil
}
