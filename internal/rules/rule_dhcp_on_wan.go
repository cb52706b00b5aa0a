package rules

import (
	"time"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

func init() {
	Register(Rule{
		ID:       string(ir.RiskDHCPOnWAN),
		Summary:  "A WAN-zoned interface runs a DHCP server.",
		Severity: ir.SeverityCritical,
		Category: ir.CategoryMisconfiguration,
		Priority: 18,
		Eval:     evalDHCPOnWAN,
	})
}

func evalDHCPOnWAN(cfg *ir.Config, _ time.Time) []ir.Finding {
	var out []ir.Finding
	for _, ifc := range cfg.Interfaces {
		if ifc.Zone == "WAN" && ifc.DHCPServerEnabled {
			out = append(out, ir.Finding{
				Description: "DHCP server is enabled on WAN interface \"" + ifc.Name + "\"; leases must never be offered on the WAN.",
				Reference:   ifc.Name,
			})
		}
	}
	return out
}
