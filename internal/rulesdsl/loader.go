package rulesdsl

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
	"github.com/Ali-A-Asfour/fwrisk/internal/rules"
)

type dslPack struct {
	Rules []dslRule `yaml:"rules"`
}

type dslRule struct {
	ID          string `yaml:"id"`
	Summary     string `yaml:"summary"`
	Severity    string `yaml:"severity"` // critical|high|medium|low
	Category    string `yaml:"category"` // one of the four risk categories
	Description string `yaml:"description"`

	// Where selects firewall rule entries. Regex fields are matched
	// case-insensitively; action/enabled are exact filters.
	Where struct {
		Name            string `yaml:"name"`             // regex (optional)
		SourceZone      string `yaml:"source_zone"`      // regex (optional)
		DestinationZone string `yaml:"destination_zone"` // regex (optional)
		Service         string `yaml:"service"`          // regex (optional)
		Action          string `yaml:"action"`           // exact: allow|deny (optional)
		EnabledOnly     bool   `yaml:"enabled_only"`     // skip disabled rules
	} `yaml:"where"`
}

type compiled struct {
	rule     dslRule
	reName   *regexp.Regexp
	reSrc    *regexp.Regexp
	reDst    *regexp.Regexp
	reSvc    *regexp.Regexp
	severity ir.Severity
	category ir.Category
}

// LoadAndRegister reads a YAML rule pack and registers each rule next to
// the built-ins. Returns the number of rules registered.
func LoadAndRegister(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read rules pack: %w", err)
	}
	var pack dslPack
	if err := yaml.Unmarshal(b, &pack); err != nil {
		return 0, fmt.Errorf("parse yaml: %w", err)
	}
	var n int
	for _, r := range pack.Rules {
		cr, err := compile(r)
		if err != nil {
			return n, fmt.Errorf("compile rule %q: %w", r.ID, err)
		}
		registerCompiled(*cr)
		n++
	}
	return n, nil
}

func compile(r dslRule) (*compiled, error) {
	if r.ID == "" || r.Severity == "" || r.Category == "" || r.Description == "" {
		return nil, fmt.Errorf("missing required fields (id/severity/category/description)")
	}
	c := &compiled{rule: r, severity: rules.ParseSeverity(r.Severity)}
	switch ir.Category(strings.ToLower(strings.TrimSpace(r.Category))) {
	case ir.CategoryExposure, ir.CategoryMisconfiguration, ir.CategoryFeatureDisabled, ir.CategoryBestPractice:
		c.category = ir.Category(strings.ToLower(strings.TrimSpace(r.Category)))
	default:
		return nil, fmt.Errorf("unknown category %q", r.Category)
	}
	var err error
	if c.reName, err = optRegexp(r.Where.Name); err != nil {
		return nil, fmt.Errorf("name regex: %w", err)
	}
	if c.reSrc, err = optRegexp(r.Where.SourceZone); err != nil {
		return nil, fmt.Errorf("source_zone regex: %w", err)
	}
	if c.reDst, err = optRegexp(r.Where.DestinationZone); err != nil {
		return nil, fmt.Errorf("destination_zone regex: %w", err)
	}
	if c.reSvc, err = optRegexp(r.Where.Service); err != nil {
		return nil, fmt.Errorf("service regex: %w", err)
	}
	return c, nil
}

func optRegexp(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	return regexp.Compile("(?i)" + expr)
}

func registerCompiled(c compiled) {
	rules.Register(rules.Rule{
		ID:       c.rule.ID,
		Summary:  c.rule.Summary,
		Severity: c.severity,
		Category: c.category,
		Eval: func(cfg *ir.Config, _ time.Time) []ir.Finding {
			var out []ir.Finding
			for _, fr := range cfg.Rules {
				if c.rule.Where.EnabledOnly && !fr.Enabled {
					continue
				}
				if c.rule.Where.Action != "" && !strings.EqualFold(fr.Action, c.rule.Where.Action) {
					continue
				}
				if c.reName != nil && !c.reName.MatchString(fr.Name) {
					continue
				}
				if c.reSrc != nil && !c.reSrc.MatchString(fr.SourceZone) {
					continue
				}
				if c.reDst != nil && !c.reDst.MatchString(fr.DestinationZone) {
					continue
				}
				if c.reSvc != nil && !c.reSvc.MatchString(fr.Service) {
					continue
				}
				out = append(out, ir.Finding{
					RiskType:    ir.RiskType(c.rule.ID),
					Severity:    c.severity,
					Category:    c.category,
					Description: c.rule.Description + " (rule \"" + fr.Name + "\")",
					Reference:   fr.Name,
				})
			}
			return out
		},
	})
}
