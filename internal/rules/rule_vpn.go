package rules

import (
	"strings"
	"time"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

// weakEncryption lists ciphers considered broken for VPN transport.
var weakEncryption = []string{"des", "3des"}

func init() {
	Register(Rule{
		ID:       string(ir.RiskVPNWeakEncryption),
		Summary:  "VPN policy negotiates a broken cipher.",
		Severity: ir.SeverityHigh,
		Category: ir.CategoryFeatureDisabled,
		Priority: 15,
		Eval:     evalVPNWeakEncryption,
	})

	Register(Rule{
		ID:       string(ir.RiskVPNPSKOnly),
		Summary:  "VPN policy authenticates peers with a pre-shared key only.",
		Severity: ir.SeverityMedium,
		Category: ir.CategoryBestPractice,
		Priority: 16,
		Eval:     evalVPNPSKOnly,
	})
}

func evalVPNWeakEncryption(cfg *ir.Config, _ time.Time) []ir.Finding {
	var out []ir.Finding
	for _, p := range cfg.VPNConfigs {
		for _, weak := range weakEncryption {
			if strings.EqualFold(p.Encryption, weak) {
				out = append(out, ir.Finding{
					Description: "VPN policy \"" + p.Name + "\" uses weak encryption (" + p.Encryption + "); migrate to AES-256.",
					Reference:   p.Name,
				})
				break
			}
		}
	}
	return out
}

func evalVPNPSKOnly(cfg *ir.Config, _ time.Time) []ir.Finding {
	var out []ir.Finding
	for _, p := range cfg.VPNConfigs {
		if strings.EqualFold(p.AuthenticationMethod, "psk") {
			out = append(out, ir.Finding{
				Description: "VPN policy \"" + p.Name + "\" authenticates with a PSK only; prefer certificate authentication.",
				Reference:   p.Name,
			})
		}
	}
	return out
}
