// Package status maps order status codes onto the linear progress timeline
// the tracking views render.
package status

import "github.com/bprathamesh20/food-delivery/models"

type Step struct {
	Key   models.OrderStatus
	Label string
}

// Steps is the fixed order lifecycle, in sequence. CANCELLED sits outside it.
var Steps = []Step{
	{Key: models.OrderPending, Label: "Order Placed"},
	{Key: models.OrderConfirmed, Label: "Confirmed"},
	{Key: models.OrderPreparing, Label: "Preparing"},
	{Key: models.OrderReady, Label: "Ready"},
	{Key: models.OrderPickedUp, Label: "Picked Up"},
	{Key: models.OrderDelivered, Label: "Delivered"},
}

type StepState int

const (
	StepPending StepState = iota
	StepCurrent
	StepCompleted
)

// Progress is the derived rendering state for one order status value.
type Progress struct {
	// Index is the position in Steps, or -1 for CANCELLED and unrecognized
	// values.
	Index     int
	Cancelled bool
	// Known is false for status values outside the enumerated lifecycle;
	// they render as a distinct unknown state rather than crashing the view.
	Known bool
}

func Of(s models.OrderStatus) Progress {
	if s == models.OrderCancelled {
		return Progress{Index: -1, Cancelled: true, Known: true}
	}
	for i, step := range Steps {
		if step.Key == s {
			return Progress{Index: i, Known: true}
		}
	}
	return Progress{Index: -1}
}

// StateAt reports how the step at position i renders: completed at or before
// the current position, current exactly at it, pending after it. A cancelled
// or unknown progress marks every position pending; the terminal cancelled
// (or unknown) rendering replaces the timeline entirely.
func (p Progress) StateAt(i int) StepState {
	if p.Cancelled || !p.Known || p.Index < 0 {
		return StepPending
	}
	switch {
	case i < p.Index:
		return StepCompleted
	case i == p.Index:
		return StepCurrent
	default:
		return StepPending
	}
}

// Completed reports whether position i is at or behind the current status.
func (p Progress) Completed(i int) bool {
	return p.Known && !p.Cancelled && p.Index >= 0 && i <= p.Index
}
