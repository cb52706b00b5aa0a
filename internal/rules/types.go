package rules

import (
	"time"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

// Rule is a single posture check executed over a device configuration.
type Rule struct {
	ID       string
	Summary  string
	Severity ir.Severity
	Category ir.Category
	// Priority fixes the position of the rule's findings in the output.
	// Built-in rules use 1..20; DSL rules are appended after them.
	Priority int
	// Eval inspects the configuration and returns findings. It must not
	// mutate cfg. now is the evaluation instant for age-based checks.
	Eval func(cfg *ir.Config, now time.Time) []ir.Finding
}
