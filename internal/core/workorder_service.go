package core

import "time"

// statusTransitions maps each status to the statuses it may move to. The
// table is process-wide constant data, never mutated after init, so
// concurrent readers need no coordination. quality_check → printing is the
// rework loop; complete has no outgoing edges.
var statusTransitions = map[WorkOrderStatus][]WorkOrderStatus{
	StatusPending:      {StatusInDesign, StatusReadyToPrint},
	StatusInDesign:     {StatusReadyToPrint},
	StatusReadyToPrint: {StatusPrinting},
	StatusPrinting:     {StatusFinishing, StatusQualityCheck},
	StatusFinishing:    {StatusQualityCheck, StatusComplete},
	StatusQualityCheck: {StatusComplete, StatusPrinting},
	StatusComplete:     {},
}

// notifyStatuses are the customer-visible milestones: a status change
// landing on one of these should trigger a customer notification.
var notifyStatuses = map[WorkOrderStatus]bool{
	StatusReadyToPrint: true,
	StatusQualityCheck: true,
	StatusComplete:     true,
}

// ValidateStatusTransition checks that requested is reachable from
// current. On success it is a no-op; the caller performs the actual
// mutation and history append. Fails with *InvalidTransitionError
// otherwise.
func ValidateStatusTransition(current, requested WorkOrderStatus) error {
	for _, next := range statusTransitions[current] {
		if next == requested {
			return nil
		}
	}
	return &InvalidTransitionError{Current: current, Requested: requested}
}

// AllowedNextStatuses returns the statuses reachable from current, empty
// for complete or an unknown status. The returned slice is a copy.
func AllowedNextStatuses(current WorkOrderStatus) []WorkOrderStatus {
	allowed := statusTransitions[current]
	out := make([]WorkOrderStatus, len(allowed))
	copy(out, allowed)
	return out
}

// CanEditWorkOrder reports whether field-level updates (due date,
// assignee, notes) are still allowed: only before production has
// materially started.
func CanEditWorkOrder(status WorkOrderStatus) bool {
	return status == StatusPending || status == StatusInDesign
}

// CanCancelWorkOrder reports whether the order can still be cancelled:
// every status except complete.
func CanCancelWorkOrder(status WorkOrderStatus) bool {
	return status != StatusComplete
}

// GetProductionPhase groups a status into its reporting phase.
func GetProductionPhase(status WorkOrderStatus) ProductionPhase {
	switch status {
	case StatusPending, StatusInDesign:
		return PhasePreProduction
	case StatusReadyToPrint, StatusPrinting:
		return PhaseProduction
	case StatusFinishing, StatusQualityCheck:
		return PhasePostProduction
	default:
		return PhaseCompleted
	}
}

// Phase is GetProductionPhase as a method.
func (s WorkOrderStatus) Phase() ProductionPhase {
	return GetProductionPhase(s)
}

// ShouldNotifyOnStatusChange reports whether a transition landing on
// newStatus is a customer-visible milestone.
func ShouldNotifyOnStatusChange(newStatus WorkOrderStatus) bool {
	return notifyStatuses[newStatus]
}

// CalculatePriority scores urgency 1–5 (5 most urgent) from the due date.
// No due date is neutral (3). An overdue or due-within-24h order scores 5
// unless it is already complete, in which case the urgency collapses to 1
// (overdue) or 2 (due soon). Further-out due dates step down through 4,
// 3, and 2. now is passed in so the function stays pure.
func CalculatePriority(dueDate *time.Time, status WorkOrderStatus, now time.Time) int {
	if dueDate == nil {
		return 3
	}

	until := dueDate.Sub(now)
	complete := status == StatusComplete

	switch {
	case until < 0:
		if complete {
			return 1
		}
		return 5
	case until <= 24*time.Hour:
		if complete {
			return 2
		}
		return 5
	case until <= 48*time.Hour:
		return 4
	case until <= 72*time.Hour:
		return 3
	default:
		return 2
	}
}
