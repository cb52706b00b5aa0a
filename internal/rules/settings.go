package rules

import (
	"strings"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

type Settings struct {
	SeverityThreshold ir.Severity
	Disabled          map[string]bool
}

var rsettings = Settings{
	SeverityThreshold: ir.SeverityLow,
	Disabled:          map[string]bool{},
}

func SetSettings(s Settings) {
	// fill defaults
	if s.SeverityThreshold == "" {
		s.SeverityThreshold = ir.SeverityLow
	}
	if s.Disabled == nil {
		s.Disabled = map[string]bool{}
	}
	rsettings = s
}

func severityOK(sev ir.Severity) bool {
	return sev.Rank() >= rsettings.SeverityThreshold.Rank()
}

// ParseSeverity normalizes user-supplied severity tokens; unknown input
// maps to low so filters degrade to "show everything".
func ParseSeverity(s string) ir.Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return ir.SeverityCritical
	case "high":
		return ir.SeverityHigh
	case "medium":
		return ir.SeverityMedium
	default:
		return ir.SeverityLow
	}
}
