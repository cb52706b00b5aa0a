package rules

import (
	"time"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

func init() {
	Register(Rule{
		ID:       string(ir.RiskOpenInbound),
		Summary:  "Enabled allow rule exposes the whole LAN to any WAN source on any service.",
		Severity: ir.SeverityCritical,
		Category: ir.CategoryExposure,
		Priority: 1,
		Eval:     evalOpenInbound,
	})
}

// isOpenInbound reports the WAN->LAN any/any/any allow shape. The any-any
// rule check relies on the same predicate to stay mutually exclusive with
// this one.
func isOpenInbound(r ir.FirewallRule) bool {
	return r.Enabled &&
		r.Action == "allow" &&
		r.SourceZone == "WAN" &&
		r.DestinationZone == "LAN" &&
		r.SourceAddress == ir.Wildcard &&
		r.DestinationAddress == ir.Wildcard &&
		r.Service == ir.Wildcard
}

func evalOpenInbound(cfg *ir.Config, _ time.Time) []ir.Finding {
	var out []ir.Finding
	for _, r := range cfg.Rules {
		if isOpenInbound(r) {
			out = append(out, ir.Finding{
				Description: "Unrestricted WAN to LAN access: rule \"" + r.Name + "\" allows any source to any destination on any service.",
				Reference:   r.Name,
			})
		}
	}
	return out
}
