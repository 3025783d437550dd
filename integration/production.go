package integration

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// MaterialRequest is a production request for material recorded by the
// simulated production module.
type MaterialRequest struct {
	ID         int       `json:"id"`
	MaterialID int       `json:"material_id"`
	Quantity   int       `json:"quantity"`
	Priority   string    `json:"priority"`
	CreatedAt  time.Time `json:"created_at"`
}

// Production exposes the operations the purchasing module needs from the
// production department.
type Production interface {
	RequestMaterial(materialID, quantity int, priority string) int
	Requests() []MaterialRequest
}

// ProductionSim is a simulated production module that only records requests.
type ProductionSim struct {
	mu       sync.Mutex
	requests []MaterialRequest
	nextID   int
}

var _ Production = (*ProductionSim)(nil)

// NewProductionSim creates an empty production simulation
func NewProductionSim() *ProductionSim {
	return &ProductionSim{nextID: 1}
}

// RequestMaterial records a material request and returns its tracking id
func (p *ProductionSim) RequestMaterial(materialID, quantity int, priority string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	request := MaterialRequest{
		ID:         p.nextID,
		MaterialID: materialID,
		Quantity:   quantity,
		Priority:   priority,
		CreatedAt:  time.Now(),
	}
	p.nextID++
	p.requests = append(p.requests, request)

	log.Info().
		Int("request_id", request.ID).
		Int("material_id", materialID).
		Int("quantity", quantity).
		Str("priority", priority).
		Msg("production: material request recorded")
	return request.ID
}

// Requests returns all recorded requests in creation order
func (p *ProductionSim) Requests() []MaterialRequest {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := make([]MaterialRequest, len(p.requests))
	copy(result, p.requests)
	return result
}
