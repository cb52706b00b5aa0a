package rules

import (
	"time"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

func init() {
	Register(Rule{
		ID:       string(ir.RiskAnyAnyRule),
		Summary:  "Enabled allow rule matches any source, destination and service.",
		Severity: ir.SeverityHigh,
		Category: ir.CategoryMisconfiguration,
		Priority: 2,
		Eval:     evalAnyAny,
	})
}

func evalAnyAny(cfg *ir.Config, _ time.Time) []ir.Finding {
	var out []ir.Finding
	for _, r := range cfg.Rules {
		if !r.Enabled || r.Action != "allow" {
			continue
		}
		if r.SourceAddress != ir.Wildcard || r.DestinationAddress != ir.Wildcard || r.Service != ir.Wildcard {
			continue
		}
		// The WAN->LAN shape is already reported as OPEN_INBOUND; reporting
		// it twice would double-count one misconfiguration.
		if isOpenInbound(r) {
			continue
		}
		out = append(out, ir.Finding{
			Description: "Firewall rule \"" + r.Name + "\" is an any-to-any allow rule; restrict source, destination and service.",
			Reference:   r.Name,
		})
	}
	return out
}
