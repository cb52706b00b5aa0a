package rules

import (
	"strings"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
	"github.com/Ali-A-Asfour/fwrisk/internal/storage"
)

// ApplyWaivers filters out findings that match any active waiver.
// Returns (kept, waivedCount).
func ApplyWaivers(in []ir.Finding, waivers []storage.Waiver) ([]ir.Finding, int) {
	if len(waivers) == 0 || len(in) == 0 {
		return in, 0
	}
	var out []ir.Finding
	waived := 0
nextFinding:
	for _, f := range in {
		for _, w := range waivers {
			if !eqCI(string(f.RiskType), w.RuleID) {
				continue
			}
			if w.Device != "" && !eqCI(f.Device, w.Device) {
				continue
			}
			if w.Reference != "" && !eqCI(f.Reference, w.Reference) {
				continue
			}
			if w.PatternSub != "" {
				ps := strings.ToUpper(w.PatternSub)
				if !strings.Contains(strings.ToUpper(f.Description), ps) {
					continue
				}
			}
			// matched -> waive it
			waived++
			continue nextFinding
		}
		out = append(out, f)
	}
	return out, waived
}

func eqCI(a, b string) bool { return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b)) }
