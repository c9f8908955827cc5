package core

import "fmt"

// InvalidQuantityError reports a pricing request for zero or fewer items.
// It is a business rule violation, never a programming fault; callers are
// expected to surface it as a validation failure.
type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than zero, got %d", e.Quantity)
}

// InvalidTransitionError reports a work order status change that the
// transition table does not allow. It carries both statuses for
// diagnostic display.
type InvalidTransitionError struct {
	Current   WorkOrderStatus
	Requested WorkOrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("work order cannot move from %s to %s", e.Current, e.Requested)
}
