package rules

import (
	"strings"
	"time"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

func init() {
	Register(Rule{
		ID:       string(ir.RiskRuleNoDescription),
		Summary:  "Firewall rule carries no comment explaining its purpose.",
		Severity: ir.SeverityLow,
		Category: ir.CategoryBestPractice,
		Priority: 12,
		Eval:     evalNoDescription,
	})
}

func evalNoDescription(cfg *ir.Config, _ time.Time) []ir.Finding {
	var out []ir.Finding
	for _, r := range cfg.Rules {
		if strings.TrimSpace(r.Comment) != "" {
			continue
		}
		out = append(out, ir.Finding{
			Description: "Firewall rule \"" + r.Name + "\" is missing description; undocumented rules complicate review.",
			Reference:   r.Name,
		})
	}
	return out
}
