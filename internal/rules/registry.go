package rules

import (
	"fmt"
	"hash/crc32"
	"sort"
	"strings"
	"time"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

var (
	registry  []Rule
	ruleIndex = map[string]int{} // UPPER(ruleID) -> index
)

// dslPriorityBase keeps DSL-registered rules after the built-in battery.
const dslPriorityBase = 1000

func Register(r Rule) {
	if r.Priority == 0 {
		r.Priority = dslPriorityBase + len(registry)
	}
	registry = append(registry, r)
	ruleIndex[strings.ToUpper(strings.TrimSpace(r.ID))] = len(registry) - 1
}

// List returns enabled rules in evaluation (priority) order.
func List() []Rule {
	out := make([]Rule, 0, len(registry))
	for _, r := range registry {
		if rsettings.Disabled[strings.ToUpper(r.ID)] {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority == out[j].Priority {
			return out[i].ID < out[j].ID
		}
		return out[i].Priority < out[j].Priority
	})
	return out
}

// EvaluateConfig runs every enabled rule against one configuration snapshot
// and concatenates the findings in rule-priority order. It is a pure
// function: cfg is never mutated, identical input yields an identical,
// order-stable list, and concurrent calls need no coordination.
func EvaluateConfig(cfg *ir.Config, now time.Time) []ir.Finding {
	var all []ir.Finding
	for _, rule := range List() {
		fs := rule.Eval(cfg, now)
		for k := range fs {
			if fs[k].RiskType == "" {
				fs[k].RiskType = ir.RiskType(rule.ID)
			}
			if fs[k].Severity == "" {
				fs[k].Severity = rule.Severity
			}
			if fs[k].Category == "" {
				fs[k].Category = rule.Category
			}
			if !severityOK(fs[k].Severity) {
				continue
			}
			all = append(all, fs[k])
		}
	}
	return all
}

// Evaluate runs the rule battery over every device in the audit and assigns
// audit-unique finding IDs.
func Evaluate(audit *ir.Audit) []ir.Finding {
	now := audit.StartedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var all []ir.Finding
	seen := make(map[string]struct{}) // finding IDs seen in this audit
	seq := 0

	put := func(id string) bool {
		if _, ok := seen[id]; ok {
			return false
		}
		seen[id] = struct{}{}
		return true
	}

	for i := range audit.Devices {
		dev := &audit.Devices[i]
		fs := EvaluateConfig(&dev.Config, now)
		for k := range fs {
			if fs[k].Device == "" {
				fs[k].Device = dev.Name
			}
			id := makeID(string(fs[k].RiskType), fs[k].Device, fs[k].Reference, k)
			if !put(id) {
				// Collision within the audit; assign a fresh sequential id.
				for {
					seq++
					candidate := fmt.Sprintf("%s-%06d", fs[k].RiskType, seq)
					if put(candidate) {
						id = candidate
						break
					}
				}
			}
			fs[k].ID = id
		}
		all = append(all, fs...)
	}
	return all
}

func makeID(riskType, device, reference string, idx int) string {
	data := fmt.Sprintf("%s|%s|%s|%d", riskType, device, reference, idx)
	sum := crc32.ChecksumIEEE([]byte(data))
	return fmt.Sprintf("%s-%08x", riskType, sum)
}

// Get returns a rule by ID if registered (used by the rules API and the
// HTML report to show rule metadata).
func Get(id string) (Rule, bool) {
	idx, ok := ruleIndex[strings.ToUpper(strings.TrimSpace(id))]
	if !ok || idx < 0 || idx >= len(registry) {
		return Rule{}, false
	}
	return registry[idx], true
}
