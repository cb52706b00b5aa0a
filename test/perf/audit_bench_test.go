package perf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
	"github.com/Ali-A-Asfour/fwrisk/internal/parser"
	"github.com/Ali-A-Asfour/fwrisk/internal/rules"
	"github.com/Ali-A-Asfour/fwrisk/internal/scoring"
)

const benchExport = `device: fw-bench-01
vendor: sonicwall
config:
  rules:
    - name: wan-open
      source_zone: WAN
      destination_zone: LAN
      source_address: any
      destination_address: any
      service: any
      action: allow
      enabled: true
      comment: temp
    - name: lan-web
      source_zone: LAN
      destination_zone: WAN
      source_address: 10.0.0.0/24
      destination_address: any
      service: https
      action: allow
      enabled: true
  security_settings:
    ips_enabled: false
    gav_enabled: true
  admin_settings:
    admin_usernames: [admin]
    mfa_enabled: false
    https_admin_port: 443
    ssh_enabled: true
  interfaces:
    - name: X1
      zone: WAN
      dhcp_server_enabled: true
  vpn_configs:
    - name: legacy
      encryption: 3des
      authentication_method: psk
  system_settings:
    firmware_version: 6.5.4 (2024-01-15)
    hostname: fw-bench-01
    ntp_servers: []
`

func BenchmarkAudit_SingleDevice(b *testing.B) {
	dir := b.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bench.yaml"), []byte(benchExport), 0o644); err != nil {
		b.Fatal(err)
	}

	rules.SetSettings(rules.Settings{
		SeverityThreshold: ir.SeverityLow,
		Disabled:          map[string]bool{},
	})
	started := time.Date(2025, time.August, 26, 12, 0, 0, 0, time.UTC)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		audit, _ := parser.Parse(dir)
		audit.StartedAt = started
		audit.Findings = rules.Evaluate(&audit)
		audit.Score = scoring.Score(audit.Findings)
		if len(audit.Findings) == 0 {
			b.Fatal("no findings produced")
		}
	}
}

func BenchmarkEvaluate_ManyDevices(b *testing.B) {
	dir := b.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bench.yaml"), []byte(benchExport), 0o644); err != nil {
		b.Fatal(err)
	}
	seed, _ := parser.Parse(dir)
	if len(seed.Devices) != 1 {
		b.Fatal("bench export did not parse")
	}

	audit := ir.Audit{StartedAt: time.Date(2025, time.August, 26, 12, 0, 0, 0, time.UTC)}
	for i := 0; i < 100; i++ {
		d := seed.Devices[0]
		d.Name = d.Name + "-" + string(rune('a'+i%26))
		audit.Devices = append(audit.Devices, d)
	}

	rules.SetSettings(rules.Settings{
		SeverityThreshold: ir.SeverityLow,
		Disabled:          map[string]bool{},
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if fs := rules.Evaluate(&audit); len(fs) == 0 {
			b.Fatal("no findings produced")
		}
	}
}
