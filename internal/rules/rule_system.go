package rules

import (
	"regexp"
	"time"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

// firmwareDateRe matches the parenthesized release date the exporter embeds
// in firmware version strings, e.g. "7.0.1-5050 (2024-03-01)".
var firmwareDateRe = regexp.MustCompile(`\((\d{4}-\d{2}-\d{2})\)`)

const firmwareMaxAgeMonths = 6

func init() {
	Register(Rule{
		ID:       string(ir.RiskOutdatedFirmware),
		Summary:  "Firmware release date is more than six months old.",
		Severity: ir.SeverityMedium,
		Category: ir.CategoryBestPractice,
		Priority: 19,
		Eval:     evalOutdatedFirmware,
	})

	Register(Rule{
		ID:       string(ir.RiskNoNTP),
		Summary:  "No NTP servers are configured.",
		Severity: ir.SeverityLow,
		Category: ir.CategoryBestPractice,
		Priority: 20,
		Eval: func(cfg *ir.Config, _ time.Time) []ir.Finding {
			if len(cfg.SystemSettings.NTPServers) > 0 {
				return nil
			}
			return []ir.Finding{{
				Description: "No NTP servers configured; time synchronization is required for trustworthy logs and certificate validation.",
			}}
		},
	})
}

func evalOutdatedFirmware(cfg *ir.Config, now time.Time) []ir.Finding {
	m := firmwareDateRe.FindStringSubmatch(cfg.SystemSettings.FirmwareVersion)
	if m == nil {
		// No embedded date: data-quality issue for the parser, not a risk.
		return nil
	}
	released, err := time.Parse("2006-01-02", m[1])
	if err != nil {
		return nil
	}
	if monthsBetween(released, now) <= firmwareMaxAgeMonths {
		return nil
	}
	return []ir.Finding{{
		Description: "Firmware released " + m[1] + " is more than 6 months old and likely outdated; schedule an upgrade.",
		Reference:   cfg.SystemSettings.FirmwareVersion,
	}}
}

// monthsBetween counts whole calendar months from a to b. A partial month
// (b's day-of-month before a's) does not count.
func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}
