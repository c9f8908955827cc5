package core

import (
	"time"

	"github.com/google/uuid"
)

// WorkOrderStatus tracks a work order through the production pipeline:
//
//	pending → in_design → ready_to_print → printing → finishing → quality_check → complete
//
// pending may skip design, printing may skip finishing, and quality_check
// may send a job back to printing for rework. complete is terminal.
type WorkOrderStatus string

const (
	StatusPending      WorkOrderStatus = "pending"
	StatusInDesign     WorkOrderStatus = "in_design"
	StatusReadyToPrint WorkOrderStatus = "ready_to_print"
	StatusPrinting     WorkOrderStatus = "printing"
	StatusFinishing    WorkOrderStatus = "finishing"
	StatusQualityCheck WorkOrderStatus = "quality_check"
	StatusComplete     WorkOrderStatus = "complete"
)

// Valid reports whether s is one of the known statuses.
func (s WorkOrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// Terminal reports whether s has no outgoing transitions.
func (s WorkOrderStatus) Terminal() bool {
	return s == StatusComplete
}

// ProductionPhase is a coarse grouping of statuses for reporting
// dashboards.
type ProductionPhase string

const (
	PhasePreProduction  ProductionPhase = "Pre-production"
	PhaseProduction     ProductionPhase = "Production"
	PhasePostProduction ProductionPhase = "Post-production"
	PhaseCompleted      ProductionPhase = "Completed"
)

// WorkOrder is the production-tracking record created once a quote is
// accepted, distinct from the quote itself. The surrounding system
// persists it and performs status mutations; the engine only validates
// transitions and derives read-only facts.
type WorkOrder struct {
	ID          uuid.UUID       `json:"id"`
	QuoteID     uuid.UUID       `json:"quote_id"`
	OrderNumber string          `json:"order_number"`
	Status      WorkOrderStatus `json:"status"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	AssignedTo  string          `json:"assigned_to,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// StatusChange is one entry in a work order's transition history. The
// caller appends it after a validated mutation.
type StatusChange struct {
	WorkOrderID uuid.UUID       `json:"work_order_id"`
	From        WorkOrderStatus `json:"from"`
	To          WorkOrderStatus `json:"to"`
	ChangedBy   string          `json:"changed_by,omitempty"`
	ChangedAt   time.Time       `json:"changed_at"`
}

// NewWorkOrder creates a work order in the initial pending status.
func NewWorkOrder(quoteID uuid.UUID, orderNumber string, dueDate *time.Time, now time.Time) WorkOrder {
	return WorkOrder{
		ID:          uuid.New(),
		QuoteID:     quoteID,
		OrderNumber: orderNumber,
		Status:      StatusPending,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Priority scores the work order 1–5 (5 most urgent) against now.
func (w *WorkOrder) Priority(now time.Time) int {
	return CalculatePriority(w.DueDate, w.Status, now)
}

// CanEdit reports whether field-level updates are still allowed.
func (w *WorkOrder) CanEdit() bool {
	return CanEditWorkOrder(w.Status)
}

// CanCancel reports whether the order can still be cancelled.
func (w *WorkOrder) CanCancel() bool {
	return CanCancelWorkOrder(w.Status)
}
