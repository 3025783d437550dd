package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/purchasing/models"
)

// SupplierStore owns the supplier list and its id counter. Fiber serves
// requests concurrently, so every operation locks the store.
type SupplierStore struct {
	mu        sync.Mutex
	suppliers []models.Supplier
	nextID    int
}

// NewSupplierStore creates an empty supplier store with ids starting at 1
func NewSupplierStore() *SupplierStore {
	return &SupplierStore{nextID: 1}
}

// Add validates and registers a new supplier. Ids are sequential and never
// reused; a failed add leaves the list and the counter untouched.
func (s *SupplierStore) Add(name, address, taxID, product string, price decimal.Decimal) (*models.Supplier, error) {
	start := time.Now()

	if err := validateSupplier(name, address, taxID, product, price); err != nil {
		Ops.Log("supplier.add", name, time.Since(start), err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	supplier := models.Supplier{
		ID:      s.nextID,
		Name:    strings.TrimSpace(name),
		Address: strings.TrimSpace(address),
		TaxID:   strings.TrimSpace(taxID),
		Product: strings.TrimSpace(product),
		Price:   price,
	}
	s.nextID++
	s.suppliers = append(s.suppliers, supplier)

	Ops.Log("supplier.add", fmt.Sprintf("#%d %s", supplier.ID, supplier.Name), time.Since(start), nil)
	return &supplier, nil
}

func validateSupplier(name, address, taxID, product string, price decimal.Decimal) error {
	switch {
	case strings.TrimSpace(name) == "":
		return &ValidationError{Field: "name", Reason: "is required"}
	case strings.TrimSpace(address) == "":
		return &ValidationError{Field: "address", Reason: "is required"}
	case strings.TrimSpace(taxID) == "":
		return &ValidationError{Field: "tax_id", Reason: "is required"}
	case strings.TrimSpace(product) == "":
		return &ValidationError{Field: "product", Reason: "is required"}
	case !price.IsPositive():
		return &ValidationError{Field: "price", Reason: "must be a positive number"}
	}
	return nil
}

// Remove deletes the supplier with the given id. Removing an unknown id is
// a no-op. The id counter is not rewound, so ids are never reused.
func (s *SupplierStore) Remove(id int) bool {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, supplier := range s.suppliers {
		if supplier.ID == id {
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			Ops.Log("supplier.remove", fmt.Sprintf("#%d", id), time.Since(start), nil)
			return true
		}
	}
	return false
}

// FindByID returns the supplier with the given id
func (s *SupplierStore) FindByID(id int) (*models.Supplier, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			supplier := s.suppliers[i]
			return &supplier, true
		}
	}
	return nil, false
}

// List returns all suppliers in insertion order
func (s *SupplierStore) List() []models.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Supplier, len(s.suppliers))
	copy(result, s.suppliers)
	return result
}

// Count returns the number of registered suppliers
func (s *SupplierStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.suppliers)
}

// ListByProduct returns the suppliers offering the given product
func (s *SupplierStore) ListByProduct(product string) []models.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Supplier
	for _, supplier := range s.suppliers {
		if strings.EqualFold(supplier.Product, product) {
			result = append(result, supplier)
		}
	}
	return result
}

// ListOrderedByPrice returns all suppliers ordered by product price, most
// expensive first. The base list keeps its insertion order.
func (s *SupplierStore) ListOrderedByPrice() []models.Supplier {
	result := s.List()
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Price.GreaterThan(result[j].Price)
	})
	return result
}

// Products returns the distinct product names in insertion order, used to
// build the category filter options.
func (s *SupplierStore) Products() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var result []string
	for _, supplier := range s.suppliers {
		if !seen[supplier.Product] {
			seen[supplier.Product] = true
			result = append(result, supplier.Product)
		}
	}
	return result
}
