package export

import (
	"regexp"
	"strings"
)

// Stock descriptions may embed a unit marker like "[unit:pcs]". Absent marker
// means kilograms. The marker is presentation metadata: it picks the quantity
// precision and is stripped from the displayed description.
const (
	UnitKg  = "kg"
	UnitPcs = "pcs"
)

var unitMarkerRe = regexp.MustCompile(`(?i)\s*\[unit:(kg|pcs)\]\s*`)

// ParseUnit extracts the unit marker from a stock description.
func ParseUnit(description string) string {
	m := unitMarkerRe.FindStringSubmatch(description)
	if m != nil && strings.EqualFold(m[1], UnitPcs) {
		return UnitPcs
	}
	return UnitKg
}

// StripUnit removes the unit marker and surrounding whitespace.
func StripUnit(description string) string {
	return strings.TrimSpace(unitMarkerRe.ReplaceAllString(description, ""))
}
