package domain

import (
	"fmt"
	"math"
	"strings"
)

// Presentation helpers live here as free functions so the planning core
// stays UI-agnostic. Nothing in internal/services calls these.

// FormatRange renders a range in whole kilometers, e.g. "512 km".
func FormatRange(km float64) string {
	return fmt.Sprintf("%d km", int(math.Round(km)))
}

// FormatChargeMinutes renders a charge duration, e.g. "45m" or "1h 05m".
func FormatChargeMinutes(minutes float64) string {
	total := int(math.Ceil(minutes))
	if total < 60 {
		return fmt.Sprintf("%dm", total)
	}
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}

// PowerLevelLabel renders a power bucket for station listings.
func PowerLevelLabel(level PowerLevel) string {
	switch level {
	case PowerLevelUltraFast:
		return "Ultra-fast"
	case PowerLevelFast:
		return "Fast"
	default:
		return "Level 2"
	}
}

// ConnectorSummary joins a charger's connector types for display.
func ConnectorSummary(c Charger) string {
	if len(c.ConnectorTypes) == 0 {
		return UnknownConnector
	}
	return strings.Join(c.ConnectorTypes, ", ")
}
