package models

// InventoryItem represents a material tracked by the simulated stock module
type InventoryItem struct {
	MaterialID  int    `json:"material_id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	LastOrderID int    `json:"last_order_id"`
}
