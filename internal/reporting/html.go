package reporting

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

func WriteHTML(auditID, outDir string, audit *ir.Audit) (string, error) {
	path := filepath.Join(outDir, auditID+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bySeverity := map[ir.Severity]int{}
	byCategory := map[ir.Category]int{}
	for _, fd := range audit.Findings {
		bySeverity[fd.Severity]++
		byCategory[fd.Category]++
	}

	// Head + styles
	fmt.Fprintf(f, "<!doctype html><html><head><meta charset='utf-8'><title>%s</title>", html.EscapeString(auditID))
	fmt.Fprint(f, "<style>body{font-family:system-ui,Arial,sans-serif;padding:20px;line-height:1.4} table{border-collapse:collapse;margin:8px 0} td,th{border:1px solid #ddd;padding:6px} h1,h2{margin:6px 0 4px} .dim{color:#666} .mono{font-family:ui-monospace,Menlo,Consolas,monospace} .critical{color:#b00} .high{color:#d60}</style>")
	fmt.Fprint(f, "</head><body>")

	// Title + summary
	fmt.Fprintf(f, "<h1>fwrisk audit – <span class='mono'>%s</span></h1>", html.EscapeString(auditID))
	fmt.Fprintf(f, "<p>Devices: %d &nbsp; Findings: %d &nbsp; Posture score: <b>%d</b> (%s)</p>",
		len(audit.Devices), len(audit.Findings), audit.Score.Value, html.EscapeString(audit.Score.Grade))

	fmt.Fprint(f, "<h2>By severity</h2><table><tr><th>Severity</th><th>Count</th></tr>")
	for _, sev := range []ir.Severity{ir.SeverityCritical, ir.SeverityHigh, ir.SeverityMedium, ir.SeverityLow} {
		fmt.Fprintf(f, "<tr><td class='%s'>%s</td><td>%d</td></tr>", sev, sev, bySeverity[sev])
	}
	fmt.Fprint(f, "</table>")

	fmt.Fprint(f, "<h2>By category</h2><table><tr><th>Category</th><th>Count</th></tr>")
	cats := make([]string, 0, len(byCategory))
	for c := range byCategory {
		cats = append(cats, string(c))
	}
	sort.Strings(cats)
	for _, c := range cats {
		fmt.Fprintf(f, "<tr><td>%s</td><td>%d</td></tr>", html.EscapeString(c), byCategory[ir.Category(c)])
	}
	fmt.Fprint(f, "</table>")

	// Findings grouped by severity for readability; the stored order stays
	// the evaluator's deterministic rule order.
	fmt.Fprint(f, "<h2>Findings</h2><table><tr><th>Severity</th><th>Risk</th><th>Device</th><th>Reference</th><th>Description</th></tr>")
	findings := make([]ir.Finding, len(audit.Findings))
	copy(findings, audit.Findings)
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Severity.Rank() > findings[j].Severity.Rank()
	})
	for _, fd := range findings {
		fmt.Fprintf(f, "<tr><td class='%s'>%s</td><td class='mono'>%s</td><td>%s</td><td class='mono'>%s</td><td>%s</td></tr>",
			fd.Severity, fd.Severity,
			html.EscapeString(string(fd.RiskType)),
			html.EscapeString(fd.Device),
			html.EscapeString(fd.Reference),
			html.EscapeString(fd.Description))
	}
	fmt.Fprint(f, "</table>")

	fmt.Fprint(f, "<p class='dim'>Generated by fwrisk</p></body></html>")
	return path, nil
}
