package scoring

import (
	"testing"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

func TestScore(t *testing.T) {
	cases := []struct {
		name      string
		findings  []ir.Finding
		wantValue int
		wantGrade string
	}{
		{"clean", nil, 100, "A"},
		{
			"one critical",
			[]ir.Finding{{Severity: ir.SeverityCritical}},
			85, "B",
		},
		{
			"mixed",
			[]ir.Finding{
				{Severity: ir.SeverityCritical},
				{Severity: ir.SeverityHigh},
				{Severity: ir.SeverityMedium},
				{Severity: ir.SeverityLow},
			},
			72, "C",
		},
		{
			"floor at zero",
			[]ir.Finding{
				{Severity: ir.SeverityCritical}, {Severity: ir.SeverityCritical},
				{Severity: ir.SeverityCritical}, {Severity: ir.SeverityCritical},
				{Severity: ir.SeverityCritical}, {Severity: ir.SeverityCritical},
				{Severity: ir.SeverityCritical},
			},
			0, "F",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.findings)
			if got.Value != tc.wantValue || got.Grade != tc.wantGrade {
				t.Fatalf("got %d/%s, want %d/%s", got.Value, got.Grade, tc.wantValue, tc.wantGrade)
			}
		})
	}
}
