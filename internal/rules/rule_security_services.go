package rules

import (
	"time"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

// The six security-service checks differ only in flag, severity and wording,
// so they are registered from one table.
func init() {
	services := []struct {
		risk        ir.RiskType
		summary     string
		severity    ir.Severity
		priority    int
		enabled     func(s ir.SecuritySettings) bool
		description string
	}{
		{
			risk:        ir.RiskIPSDisabled,
			summary:     "Intrusion prevention is turned off.",
			severity:    ir.SeverityCritical,
			priority:    6,
			enabled:     func(s ir.SecuritySettings) bool { return s.IPSEnabled },
			description: "Intrusion Prevention System (IPS) is disabled; known exploit signatures are not blocked.",
		},
		{
			risk:        ir.RiskGAVDisabled,
			summary:     "Gateway anti-virus scanning is turned off.",
			severity:    ir.SeverityCritical,
			priority:    7,
			enabled:     func(s ir.SecuritySettings) bool { return s.GAVEnabled },
			description: "Gateway Anti-Virus is disabled; malware in transit is not scanned at the perimeter.",
		},
		{
			risk:        ir.RiskDPISSLDisabled,
			summary:     "TLS traffic passes the perimeter uninspected.",
			severity:    ir.SeverityMedium,
			priority:    8,
			enabled:     func(s ir.SecuritySettings) bool { return s.DPISSLEnabled },
			description: "DPI-SSL is disabled; encrypted traffic bypasses deep packet inspection.",
		},
		{
			risk:        ir.RiskBotnetFilterDisabled,
			summary:     "Known botnet command-and-control addresses are not blocked.",
			severity:    ir.SeverityHigh,
			priority:    9,
			enabled:     func(s ir.SecuritySettings) bool { return s.BotnetFilterEnabled },
			description: "Botnet Filter is disabled; traffic to known command-and-control servers is not blocked.",
		},
		{
			risk:        ir.RiskAppControlDisabled,
			summary:     "Application-level traffic policy is not enforced.",
			severity:    ir.SeverityMedium,
			priority:    10,
			enabled:     func(s ir.SecuritySettings) bool { return s.AppControlEnabled },
			description: "Application Control is disabled; per-application traffic policies are not enforced.",
		},
		{
			risk:        ir.RiskContentFilterDisabled,
			summary:     "Web content categories are not filtered.",
			severity:    ir.SeverityMedium,
			priority:    11,
			enabled:     func(s ir.SecuritySettings) bool { return s.ContentFilterEnabled },
			description: "Content Filtering is disabled; access to malicious or unwanted web categories is unrestricted.",
		},
	}

	for _, svc := range services {
		svc := svc
		Register(Rule{
			ID:       string(svc.risk),
			Summary:  svc.summary,
			Severity: svc.severity,
			Category: ir.CategoryFeatureDisabled,
			Priority: svc.priority,
			Eval: func(cfg *ir.Config, _ time.Time) []ir.Finding {
				if svc.enabled(cfg.SecuritySettings) {
					return nil
				}
				return []ir.Finding{{Description: svc.description}}
			},
		})
	}
}
