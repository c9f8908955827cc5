package core_test

import (
	"errors"
	"testing"
	"time"

	"printshop-core/internal/core"

	"github.com/google/uuid"
)

var allStatuses = []core.WorkOrderStatus{
	core.StatusPending,
	core.StatusInDesign,
	core.StatusReadyToPrint,
	core.StatusPrinting,
	core.StatusFinishing,
	core.StatusQualityCheck,
	core.StatusComplete,
}

func TestValidateStatusTransition_Table(t *testing.T) {
	allowed := map[core.WorkOrderStatus][]core.WorkOrderStatus{
		core.StatusPending:      {core.StatusInDesign, core.StatusReadyToPrint},
		core.StatusInDesign:     {core.StatusReadyToPrint},
		core.StatusReadyToPrint: {core.StatusPrinting},
		core.StatusPrinting:     {core.StatusFinishing, core.StatusQualityCheck},
		core.StatusFinishing:    {core.StatusQualityCheck, core.StatusComplete},
		core.StatusQualityCheck: {core.StatusComplete, core.StatusPrinting},
		core.StatusComplete:     {},
	}

	for _, current := range allStatuses {
		for _, requested := range allStatuses {
			legal := false
			for _, next := range allowed[current] {
				if next == requested {
					legal = true
				}
			}

			err := core.ValidateStatusTransition(current, requested)
			if legal && err != nil {
				t.Errorf("%s -> %s: expected success, got %v", current, requested, err)
			}
			if !legal && err == nil {
				t.Errorf("%s -> %s: expected rejection", current, requested)
			}
		}
	}
}

func TestValidateStatusTransition_ErrorCarriesStatuses(t *testing.T) {
	err := core.ValidateStatusTransition(core.StatusPrinting, core.StatusComplete)
	if err == nil {
		t.Fatal("printing -> complete must be rejected")
	}

	var invalid *core.InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidTransitionError, got %T", err)
	}
	if invalid.Current != core.StatusPrinting || invalid.Requested != core.StatusComplete {
		t.Errorf("error carries %s -> %s, want printing -> complete", invalid.Current, invalid.Requested)
	}
}

func TestPrintingScenario(t *testing.T) {
	// Scenario: a job at printing may move to finishing but not straight
	// to complete.
	if err := core.ValidateStatusTransition(core.StatusPrinting, core.StatusFinishing); err != nil {
		t.Errorf("printing -> finishing must be allowed: %v", err)
	}
	if err := core.ValidateStatusTransition(core.StatusPrinting, core.StatusComplete); err == nil {
		t.Error("printing -> complete must be rejected")
	}
}

func TestAllowedNextStatuses(t *testing.T) {
	if next := core.AllowedNextStatuses(core.StatusComplete); len(next) != 0 {
		t.Errorf("complete must have no next statuses, got %v", next)
	}

	for _, status := range allStatuses {
		if status.Terminal() {
			continue
		}
		if len(core.AllowedNextStatuses(status)) == 0 {
			t.Errorf("non-terminal status %s has no next statuses", status)
		}
	}

	// The returned slice is a copy; mutating it must not poison the table.
	next := core.AllowedNextStatuses(core.StatusPending)
	next[0] = core.StatusComplete
	if err := core.ValidateStatusTransition(core.StatusPending, core.StatusComplete); err == nil {
		t.Error("mutating a returned slice must not alter the transition table")
	}
}

func TestEditAndCancelGates(t *testing.T) {
	for _, status := range allStatuses {
		wantEdit := status == core.StatusPending || status == core.StatusInDesign
		if got := core.CanEditWorkOrder(status); got != wantEdit {
			t.Errorf("CanEditWorkOrder(%s) = %v, want %v", status, got, wantEdit)
		}

		wantCancel := status != core.StatusComplete
		if got := core.CanCancelWorkOrder(status); got != wantCancel {
			t.Errorf("CanCancelWorkOrder(%s) = %v, want %v", status, got, wantCancel)
		}
	}
}

func TestGetProductionPhase(t *testing.T) {
	tests := []struct {
		status core.WorkOrderStatus
		want   core.ProductionPhase
	}{
		{core.StatusPending, core.PhasePreProduction},
		{core.StatusInDesign, core.PhasePreProduction},
		{core.StatusReadyToPrint, core.PhaseProduction},
		{core.StatusPrinting, core.PhaseProduction},
		{core.StatusFinishing, core.PhasePostProduction},
		{core.StatusQualityCheck, core.PhasePostProduction},
		{core.StatusComplete, core.PhaseCompleted},
	}

	for _, tt := range tests {
		if got := tt.status.Phase(); got != tt.want {
			t.Errorf("Phase(%s) = %s, want %s", tt.status, got, tt.want)
		}
	}
}

func TestShouldNotifyOnStatusChange(t *testing.T) {
	milestones := map[core.WorkOrderStatus]bool{
		core.StatusReadyToPrint: true,
		core.StatusQualityCheck: true,
		core.StatusComplete:     true,
	}

	for _, status := range allStatuses {
		if got := core.ShouldNotifyOnStatusChange(status); got != milestones[status] {
			t.Errorf("ShouldNotifyOnStatusChange(%s) = %v, want %v", status, got, milestones[status])
		}
	}
}

func TestCalculatePriority(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	due := func(offset time.Duration) *time.Time {
		d := now.Add(offset)
		return &d
	}

	tests := []struct {
		name    string
		dueDate *time.Time
		status  core.WorkOrderStatus
		want    int
	}{
		{"no due date is neutral", nil, core.StatusPrinting, 3},
		{"no due date stays neutral when complete", nil, core.StatusComplete, 3},
		{"overdue job is most urgent", due(-time.Hour), core.StatusPrinting, 5},
		{"overdue but complete collapses to one", due(-time.Hour), core.StatusComplete, 1},
		{"due within a day", due(12 * time.Hour), core.StatusPending, 5},
		{"due within a day but complete", due(12 * time.Hour), core.StatusComplete, 2},
		{"due within two days", due(36 * time.Hour), core.StatusPrinting, 4},
		{"due within three days", due(60 * time.Hour), core.StatusPrinting, 3},
		{"due far out", due(100 * time.Hour), core.StatusPrinting, 2},
		{"far-out completion ignores status", due(100 * time.Hour), core.StatusComplete, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.CalculatePriority(tt.dueDate, tt.status, now); got != tt.want {
				t.Errorf("CalculatePriority = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculatePriority_NonIncreasingInTimeToDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	previous := 6
	for _, offset := range []time.Duration{
		-48 * time.Hour, -time.Minute, 6 * time.Hour, 23 * time.Hour,
		25 * time.Hour, 47 * time.Hour, 49 * time.Hour, 71 * time.Hour,
		73 * time.Hour, 30 * 24 * time.Hour,
	} {
		d := now.Add(offset)
		got := core.CalculatePriority(&d, core.StatusPrinting, now)
		if got > previous {
			t.Errorf("priority rose to %d at offset %s; must not increase as due dates move out", got, offset)
		}
		previous = got
	}
}

func TestNewWorkOrder(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	due := now.Add(48 * time.Hour)
	quoteID := uuid.New()

	wo := core.NewWorkOrder(quoteID, "WO-1042", &due, now)

	if wo.Status != core.StatusPending {
		t.Errorf("new work order status = %s, want pending", wo.Status)
	}
	if wo.ID == uuid.Nil {
		t.Error("new work order must get an ID")
	}
	if wo.QuoteID != quoteID || wo.OrderNumber != "WO-1042" {
		t.Errorf("work order lost its references: %+v", wo)
	}
	if !wo.CanEdit() || !wo.CanCancel() {
		t.Error("a pending work order must be editable and cancellable")
	}
	if got := wo.Priority(now); got != 4 {
		t.Errorf("Priority = %d, want 4 for a 48h due date", got)
	}
}
