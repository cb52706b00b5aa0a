package rules

import (
	"strings"
	"time"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

// defaultAdminUsernames are the vendor defaults an attacker tries first.
var defaultAdminUsernames = []string{"admin", "root", "administrator"}

func init() {
	Register(Rule{
		ID:       string(ir.RiskWANManagementEnabled),
		Summary:  "Device management is reachable from the WAN.",
		Severity: ir.SeverityCritical,
		Category: ir.CategoryExposure,
		Priority: 3,
		Eval: func(cfg *ir.Config, _ time.Time) []ir.Finding {
			if !cfg.AdminSettings.WANManagementEnabled {
				return nil
			}
			return []ir.Finding{{
				Description: "WAN management is enabled; the admin interface is reachable from the internet.",
			}}
		},
	})

	Register(Rule{
		ID:       string(ir.RiskAdminNoMFA),
		Summary:  "Administrator accounts sign in without a second factor.",
		Severity: ir.SeverityHigh,
		Category: ir.CategoryBestPractice,
		Priority: 4,
		Eval: func(cfg *ir.Config, _ time.Time) []ir.Finding {
			if cfg.AdminSettings.MFAEnabled {
				return nil
			}
			return []ir.Finding{{
				Description: "Multi-factor authentication is not enabled for administrator accounts.",
			}}
		},
	})

	Register(Rule{
		ID:       string(ir.RiskDefaultAdminUsername),
		Summary:  "A well-known default administrator username is still in use.",
		Severity: ir.SeverityMedium,
		Category: ir.CategoryBestPractice,
		Priority: 5,
		Eval:     evalDefaultAdminUsername,
	})

	Register(Rule{
		ID:       string(ir.RiskSSHOnWAN),
		Summary:  "SSH management is enabled on a device with a WAN-facing interface.",
		Severity: ir.SeverityHigh,
		Category: ir.CategoryExposure,
		Priority: 13,
		Eval:     evalSSHOnWAN,
	})

	Register(Rule{
		ID:       string(ir.RiskDefaultAdminPort),
		Summary:  "HTTPS management listens on the default port.",
		Severity: ir.SeverityLow,
		Category: ir.CategoryBestPractice,
		Priority: 14,
		Eval: func(cfg *ir.Config, _ time.Time) []ir.Finding {
			if cfg.AdminSettings.HTTPSAdminPort != 443 {
				return nil
			}
			return []ir.Finding{{
				Description: "Default HTTPS admin port 443 is in use; move management to a non-standard port.",
			}}
		},
	})
}

func evalDefaultAdminUsername(cfg *ir.Config, _ time.Time) []ir.Finding {
	var out []ir.Finding
	for _, name := range cfg.AdminSettings.AdminUsernames {
		for _, def := range defaultAdminUsernames {
			if strings.EqualFold(name, def) {
				out = append(out, ir.Finding{
					Description: "Default admin username \"" + name + "\" is in use; rename it to a non-default account.",
					Reference:   name,
				})
				break
			}
		}
	}
	return out
}

func evalSSHOnWAN(cfg *ir.Config, _ time.Time) []ir.Finding {
	if !cfg.AdminSettings.SSHEnabled {
		return nil
	}
	for _, ifc := range cfg.Interfaces {
		if ifc.Zone == "WAN" {
			return []ir.Finding{{
				Description: "SSH management is enabled while interface \"" + ifc.Name + "\" faces the WAN; SSH should not be reachable from the internet.",
				Reference:   ifc.Name,
			}}
		}
	}
	return nil
}
