package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bprathamesh20/food-delivery/models"
	"github.com/bprathamesh20/food-delivery/status"
)

var (
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	currentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cancelledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	unknownStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// renderTimeline draws the order lifecycle as a vertical checklist. Cancelled
// and unrecognized statuses replace the timeline with a single line.
func renderTimeline(s models.OrderStatus) string {
	progress := status.Of(s)
	if progress.Cancelled {
		return cancelledStyle.Render("✗ Order cancelled")
	}
	if !progress.Known {
		return unknownStyle.Render("Status: " + string(s))
	}

	var b strings.Builder
	for i, step := range status.Steps {
		switch progress.StateAt(i) {
		case status.StepCompleted:
			b.WriteString(completedStyle.Render("  ✓ " + step.Label))
		case status.StepCurrent:
			b.WriteString(currentStyle.Render("  ▶ " + step.Label))
		default:
			b.WriteString(pendingStyle.Render("  ○ " + step.Label))
		}
		if i < len(status.Steps)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderOrderStatus(s models.OrderStatus) string {
	progress := status.Of(s)
	switch {
	case progress.Cancelled:
		return cancelledStyle.Render(string(s))
	case progress.Known && progress.Index == len(status.Steps)-1:
		return completedStyle.Render(string(s))
	case progress.Known:
		return currentStyle.Render(string(s))
	default:
		return unknownStyle.Render(string(s))
	}
}

func renderDeliveryStatus(s models.DeliveryStatus) string {
	switch s {
	case models.DeliveryDelivered:
		return completedStyle.Render(string(s))
	case models.DeliveryCancelled, models.DeliveryFailed:
		return cancelledStyle.Render(string(s))
	case models.DeliveryAssigned, models.DeliveryPickedUp, models.DeliveryInTransit:
		return currentStyle.Render(string(s))
	default:
		return pendingStyle.Render(string(s))
	}
}

func renderAgentStatus(s models.AgentStatus) string {
	switch s {
	case models.AgentAvailable:
		return completedStyle.Render(string(s))
	case models.AgentBusy:
		return currentStyle.Render(string(s))
	default:
		return pendingStyle.Render(string(s))
	}
}
