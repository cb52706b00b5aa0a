package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

type Diagnostics struct {
	Warnings []string
}

// Parse walks path (a file or directory) for normalized device exports
// (.json/.yaml/.yml) and decodes each into a Device. A file that fails to
// decode is reported as a warning and skipped; the walk never fails as a
// whole.
func Parse(path string) (ir.Audit, Diagnostics) {
	var audit ir.Audit
	audit.IRVersion = ir.Version
	audit.Source = filepath.Clean(path)
	diags := Diagnostics{}

	_ = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		name := strings.ToLower(d.Name())
		if !strings.HasSuffix(name, ".json") &&
			!strings.HasSuffix(name, ".yaml") &&
			!strings.HasSuffix(name, ".yml") {
			return nil
		}
		dev, perr := parseFile(p)
		if perr != nil {
			diags.Warnings = append(diags.Warnings, fmt.Sprintf("%s: %v", p, perr))
			return nil
		}
		audit.Devices = append(audit.Devices, dev)
		return nil
	})

	if len(audit.Devices) == 0 {
		diags.Warnings = append(diags.Warnings, "no device exports found under "+audit.Source)
	}
	return audit, diags
}

type export struct {
	Device string    `yaml:"device" json:"device"`
	Vendor string    `yaml:"vendor" json:"vendor"`
	Config ir.Config `yaml:"config" json:"config"`
}

func parseFile(p string) (ir.Device, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return ir.Device{}, err
	}

	// YAML is a superset of JSON, so one decoder covers both export styles.
	var e export
	if err := yaml.Unmarshal(b, &e); err != nil {
		return ir.Device{}, fmt.Errorf("decode export: %w", err)
	}

	name := e.Device
	if name == "" {
		name = e.Config.SystemSettings.Hostname
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	}
	return ir.Device{Name: name, Vendor: e.Vendor, Config: e.Config}, nil
}
