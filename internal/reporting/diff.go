package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

type diffPayload struct {
	BaseID  string        `json:"base_id"`
	HeadID  string        `json:"head_id"`
	Summary diffSummary   `json:"summary"`
	New     []diffFinding `json:"new"`
	Removed []diffFinding `json:"removed"`
	Changed []diffChanged `json:"changed"`
}

type diffSummary struct {
	NewCount     int `json:"new"`
	RemovedCount int `json:"removed"`
	ChangedCount int `json:"changed"`
}

type diffFinding struct {
	RiskType  string `json:"risk_type"`
	Device    string `json:"device"`
	Reference string `json:"reference,omitempty"`
	Severity  string `json:"severity,omitempty"`
	Message   string `json:"description,omitempty"`
}

type diffChanged struct {
	Key     string      `json:"key"`
	Base    diffFinding `json:"base"`
	Head    diffFinding `json:"head"`
	Changed []string    `json:"fields_changed"`
}

// WriteDiffJSON compares two audits and writes the new/removed/changed
// findings between them.
func WriteDiffJSON(baseID, headID, outDir string, base, head *ir.Audit) (string, error) {
	path := filepath.Join(outDir, "diff_"+baseID+"__"+headID+".json")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	// index findings
	bm := map[string]ir.Finding{}
	hm := map[string]ir.Finding{}
	for _, f := range base.Findings {
		bm[keyOf(f)] = f
	}
	for _, f := range head.Findings {
		hm[keyOf(f)] = f
	}

	var added []diffFinding
	var removed []diffFinding
	var changed []diffChanged

	// additions & changes
	for k, hf := range hm {
		if bf, ok := bm[k]; !ok {
			added = append(added, asDiff(hf))
		} else {
			var fields []string
			if bf.Severity != hf.Severity {
				fields = append(fields, "severity")
			}
			if strings.TrimSpace(bf.Description) != strings.TrimSpace(hf.Description) {
				fields = append(fields, "description")
			}
			if len(fields) > 0 {
				changed = append(changed, diffChanged{
					Key:     k,
					Base:    asDiff(bf),
					Head:    asDiff(hf),
					Changed: fields,
				})
			}
		}
	}
	// removals
	for k, bf := range bm {
		if _, ok := hm[k]; !ok {
			removed = append(removed, asDiff(bf))
		}
	}

	// stable sort
	sort.Slice(added, func(i, j int) bool { return added[i].RiskType < added[j].RiskType })
	sort.Slice(removed, func(i, j int) bool { return removed[i].RiskType < removed[j].RiskType })
	sort.Slice(changed, func(i, j int) bool { return changed[i].Key < changed[j].Key })

	payload := diffPayload{
		BaseID: baseID, HeadID: headID,
		Summary: diffSummary{
			NewCount:     len(added),
			RemovedCount: len(removed),
			ChangedCount: len(changed),
		},
		New:     added,
		Removed: removed,
		Changed: changed,
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, b, 0o644)
}

// keyOf identifies a finding across audits: the offending element matters,
// the audit-local ID does not.
func keyOf(f ir.Finding) string {
	sb := strings.Builder{}
	sb.WriteString(norm(string(f.RiskType)))
	sb.WriteByte('|')
	sb.WriteString(norm(f.Device))
	sb.WriteByte('|')
	sb.WriteString(norm(f.Reference))
	return sb.String()
}

func asDiff(f ir.Finding) diffFinding {
	return diffFinding{
		RiskType:  string(f.RiskType),
		Device:    f.Device,
		Reference: f.Reference,
		Severity:  string(f.Severity),
		Message:   f.Description,
	}
}

func norm(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
