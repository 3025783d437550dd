package integration

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/purchasing/models"
)

// Inventory exposes the operations the purchasing module needs from the
// stock department.
type Inventory interface {
	Reserve(materialID, quantity int) error
	RegisterPurchase(materialID, quantity, orderID int)
	Availability(materialID int) int
	Items() []models.InventoryItem
}

// InventorySim is a simulated stock module seeded with a few materials.
type InventorySim struct {
	mu    sync.Mutex
	items map[int]*models.InventoryItem
}

var _ Inventory = (*InventorySim)(nil)

// NewInventorySim creates the simulation with its sample materials
func NewInventorySim() *InventorySim {
	return &InventorySim{
		items: map[int]*models.InventoryItem{
			1: {MaterialID: 1, Name: "Aço Inox", Quantity: 100},
			2: {MaterialID: 2, Name: "Parafusos M10", Quantity: 500},
			3: {MaterialID: 3, Name: "Borracha Industrial", Quantity: 50},
		},
	}
}

// Reserve holds quantity of a material. Fails when the material is unknown
// or the available quantity is insufficient.
func (s *InventorySim) Reserve(materialID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[materialID]
	if !ok {
		return fmt.Errorf("material not found: %d", materialID)
	}
	if item.Quantity < quantity {
		return fmt.Errorf("insufficient quantity for material %d: have %d, want %d",
			materialID, item.Quantity, quantity)
	}
	item.Quantity -= quantity
	log.Info().Int("material_id", materialID).Int("quantity", quantity).Msg("inventory: material reserved")
	return nil
}

// RegisterPurchase records the arrival of purchased material. Unknown
// materials are created with a generic name, as the stock module does.
func (s *InventorySim) RegisterPurchase(materialID, quantity, orderID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[materialID]
	if !ok {
		item = &models.InventoryItem{MaterialID: materialID, Name: fmt.Sprintf("Material %d", materialID)}
		s.items[materialID] = item
	}
	item.Quantity += quantity
	item.LastOrderID = orderID
	log.Info().
		Int("material_id", materialID).
		Int("quantity", quantity).
		Int("order_id", orderID).
		Msg("inventory: purchase entry registered")
}

// Availability returns the quantity on hand, zero for unknown materials
func (s *InventorySim) Availability(materialID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item, ok := s.items[materialID]; ok {
		return item.Quantity
	}
	return 0
}

// Items returns all tracked materials ordered by id
func (s *InventorySim) Items() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.InventoryItem, 0, len(s.items))
	for _, item := range s.items {
		result = append(result, *item)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].MaterialID < result[j].MaterialID
	})
	return result
}
