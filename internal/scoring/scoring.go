package scoring

import "github.com/Ali-A-Asfour/fwrisk/internal/ir"

// Per-finding deductions from a clean score of 100.
const (
	penaltyCritical = 15
	penaltyHigh     = 8
	penaltyMedium   = 4
	penaltyLow      = 1
)

// Score summarizes an audit's findings as a 0..100 posture score with a
// letter grade. 100 means no findings.
func Score(findings []ir.Finding) ir.Score {
	value := 100
	for _, f := range findings {
		switch f.Severity {
		case ir.SeverityCritical:
			value -= penaltyCritical
		case ir.SeverityHigh:
			value -= penaltyHigh
		case ir.SeverityMedium:
			value -= penaltyMedium
		default:
			value -= penaltyLow
		}
	}
	if value < 0 {
		value = 0
	}
	return ir.Score{Value: value, Grade: grade(value)}
}

func grade(value int) string {
	switch {
	case value >= 90:
		return "A"
	case value >= 80:
		return "B"
	case value >= 70:
		return "C"
	case value >= 60:
		return "D"
	default:
		return "F"
	}
}
