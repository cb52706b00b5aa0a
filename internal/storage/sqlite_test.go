package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "fwrisk.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := db.CreateSchema(); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return db
}

func sampleAudit(id string, started time.Time) ir.Audit {
	return ir.Audit{
		ID:        id,
		StartedAt: started,
		Source:    "./exports",
		IRVersion: ir.Version,
		Devices: []ir.Device{
			{Name: "fw-a", Config: ir.Config{
				SystemSettings: ir.SystemSettings{Hostname: "fw-a"},
			}},
		},
		Findings: []ir.Finding{
			{
				ID: "NO_NTP-00000001", Device: "fw-a",
				RiskType: ir.RiskNoNTP, Severity: ir.SeverityLow,
				Category: ir.CategoryBestPractice, Description: "No NTP servers configured",
			},
			{
				ID: "DHCP_ON_WAN-00000001", Device: "fw-a",
				RiskType: ir.RiskDHCPOnWAN, Severity: ir.SeverityCritical,
				Category: ir.CategoryMisconfiguration, Description: "DHCP server is enabled on WAN interface",
				Reference: "X1",
			},
		},
		Score: ir.Score{Value: 84, Grade: "B"},
	}
}

func TestSaveLoadAudit_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	started := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	in := sampleAudit("audit-1", started)

	if err := db.SaveAudit(&in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := db.LoadAudit("audit-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.ID != in.ID || len(out.Devices) != 1 || len(out.Findings) != 2 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if out.Score.Value != 84 || out.Score.Grade != "B" {
		t.Fatalf("score not persisted: %+v", out.Score)
	}

	// saving again replaces, not duplicates
	if err := db.SaveAudit(&in); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	rows, err := db.ListAudits(10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0].Findings != 2 {
		t.Fatalf("list after upsert: %+v", rows)
	}
}

func TestListAudits_OrderAndLatest(t *testing.T) {
	db := openTestDB(t)
	older := sampleAudit("audit-1", time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC))
	newer := sampleAudit("audit-2", time.Date(2025, 8, 2, 9, 0, 0, 0, time.UTC))
	if err := db.SaveAudit(&older); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveAudit(&newer); err != nil {
		t.Fatal(err)
	}

	rows, err := db.ListAudits(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].ID != "audit-2" {
		t.Fatalf("expected newest first: %+v", rows)
	}

	latest, err := db.LoadLatestAudit()
	if err != nil {
		t.Fatal(err)
	}
	if latest.ID != "audit-2" {
		t.Fatalf("latest: got %s", latest.ID)
	}

	ok, err := db.HasAudit("audit-1")
	if err != nil || !ok {
		t.Fatalf("HasAudit(audit-1)=%v,%v", ok, err)
	}
	ok, err = db.HasAudit("nope")
	if err != nil || ok {
		t.Fatalf("HasAudit(nope)=%v,%v", ok, err)
	}
}

func TestListFindings_SeverityFilter(t *testing.T) {
	db := openTestDB(t)
	in := sampleAudit("audit-1", time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC))
	if err := db.SaveAudit(&in); err != nil {
		t.Fatal(err)
	}

	all, err := db.ListFindings("audit-1", ir.SeverityLow)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(all))
	}
	// severity rank descending
	if all[0].Severity != ir.SeverityCritical {
		t.Fatalf("expected critical first, got %s", all[0].Severity)
	}

	crit, err := db.ListFindings("audit-1", ir.SeverityCritical)
	if err != nil {
		t.Fatal(err)
	}
	if len(crit) != 1 || crit[0].RiskType != ir.RiskDHCPOnWAN {
		t.Fatalf("critical filter: %+v", crit)
	}
}

func TestUsersSessionsAndAuditLog(t *testing.T) {
	db := openTestDB(t)

	id, err := db.CreateUser("alice", "hash", "admin")
	if err != nil || id == 0 {
		t.Fatalf("create user: %d %v", id, err)
	}
	u, hash, err := db.GetUserByUsername("alice")
	if err != nil || hash != "hash" || u.Role != "admin" {
		t.Fatalf("get user: %+v %q %v", u, hash, err)
	}

	exp := time.Now().Add(time.Hour)
	if err := db.CreateSession(u.ID, "tok-1", exp); err != nil {
		t.Fatalf("create session: %v", err)
	}
	su, err := db.GetSession("tok-1")
	if err != nil || su.Username != "alice" {
		t.Fatalf("get session: %+v %v", su, err)
	}
	if err := db.DeleteSession("tok-1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := db.GetSession("tok-1"); err == nil {
		t.Fatalf("expected missing session after delete")
	}

	if err := db.LogAudit("alice", "login", "", map[string]any{"ip": "127.0.0.1"}); err != nil {
		t.Fatalf("log audit: %v", err)
	}
}

func TestWaivers_CRUD(t *testing.T) {
	db := openTestDB(t)

	exp := time.Now().Add(24 * time.Hour)
	id, err := db.CreateWaiver("NO_NTP", "fw-a", "", "", "ntp handled upstream", "alice", exp)
	if err != nil || id == 0 {
		t.Fatalf("create waiver: %d %v", id, err)
	}
	expired, err := db.CreateWaiver("DHCP_ON_WAN", "", "X1", "", "decommissioning", "alice", time.Now().Add(-time.Hour))
	if err != nil || expired == 0 {
		t.Fatalf("create expired waiver: %v", err)
	}

	active, err := db.ListWaivers(true)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 1 || active[0].RuleID != "NO_NTP" || active[0].Device != "fw-a" {
		t.Fatalf("active waivers: %+v", active)
	}

	all, err := db.ListWaivers(false)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("all waivers: %+v", all)
	}

	if err := db.RevokeWaiver(id, "alice"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	active, err = db.ListWaivers(true)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active waivers after revoke, got %+v", active)
	}
}
