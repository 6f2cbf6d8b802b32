package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bprathamesh20/food-delivery/models"
)

func TestOfMidLifecycle(t *testing.T) {
	p := Of(models.OrderPreparing)
	assert.True(t, p.Known)
	assert.False(t, p.Cancelled)
	assert.Equal(t, 2, p.Index)

	assert.Equal(t, StepCompleted, p.StateAt(0))
	assert.Equal(t, StepCompleted, p.StateAt(1))
	assert.Equal(t, StepCurrent, p.StateAt(2))
	assert.Equal(t, StepPending, p.StateAt(3))
	assert.Equal(t, StepPending, p.StateAt(4))
	assert.Equal(t, StepPending, p.StateAt(5))

	for i := range Steps {
		assert.Equal(t, i <= 2, p.Completed(i), "position %d", i)
	}
}

func TestOfTerminalStates(t *testing.T) {
	first := Of(models.OrderPending)
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, StepCurrent, first.StateAt(0))

	last := Of(models.OrderDelivered)
	assert.Equal(t, len(Steps)-1, last.Index)
	for i := range Steps {
		assert.True(t, last.Completed(i))
	}
}

func TestOfCancelled(t *testing.T) {
	p := Of(models.OrderCancelled)
	assert.True(t, p.Cancelled)
	assert.True(t, p.Known)
	assert.Equal(t, -1, p.Index)
	for i := range Steps {
		assert.Equal(t, StepPending, p.StateAt(i))
		assert.False(t, p.Completed(i))
	}
}

func TestOfUnknownStatus(t *testing.T) {
	p := Of(models.OrderStatus("REFUNDED"))
	assert.False(t, p.Known)
	assert.False(t, p.Cancelled)
	assert.Equal(t, -1, p.Index)
	for i := range Steps {
		assert.Equal(t, StepPending, p.StateAt(i))
		assert.False(t, p.Completed(i))
	}
}

func TestStepLabels(t *testing.T) {
	labels := make([]string, len(Steps))
	for i, step := range Steps {
		labels[i] = step.Label
	}
	assert.Equal(t, []string{"Order Placed", "Confirmed", "Preparing", "Ready", "Picked Up", "Delivered"}, labels)
}
