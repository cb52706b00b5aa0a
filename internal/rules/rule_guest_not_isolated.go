package rules

import (
	"time"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

func init() {
	Register(Rule{
		ID:       string(ir.RiskGuestNotIsolated),
		Summary:  "An enabled rule lets guest clients reach the internal network.",
		Severity: ir.SeverityHigh,
		Category: ir.CategoryMisconfiguration,
		Priority: 17,
		Eval:     evalGuestNotIsolated,
	})
}

func evalGuestNotIsolated(cfg *ir.Config, _ time.Time) []ir.Finding {
	var out []ir.Finding
	for _, r := range cfg.Rules {
		if r.Enabled && r.Action == "allow" && r.SourceZone == "GUEST" && r.DestinationZone == "LAN" {
			out = append(out, ir.Finding{
				Description: "Guest network is not isolated: rule \"" + r.Name + "\" allows GUEST to LAN traffic.",
				Reference:   r.Name,
			})
		}
	}
	return out
}
