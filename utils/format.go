package utils

import (
	"fmt"
	"time"
)

// FormatMoney renders an amount with the standard two-decimal currency
// display.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// timestampLayouts covers the backend's zone-less LocalDateTime strings
// alongside regular RFC 3339.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ParseTime coerces a backend timestamp string. The zero time and false are
// returned when no layout matches.
func ParseTime(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatETA renders the remaining time until an estimated delivery
// timestamp, or "" when the estimate is absent or unparseable.
func FormatETA(estimated string, now time.Time) string {
	if estimated == "" {
		return ""
	}
	eta, ok := ParseTime(estimated)
	if !ok {
		return ""
	}
	minutes := int(eta.Sub(now).Minutes())
	if minutes < 0 {
		minutes = 0
	}
	switch {
	case minutes == 0:
		return "Arriving now"
	case minutes < 60:
		return fmt.Sprintf("%d min", minutes)
	default:
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
}
