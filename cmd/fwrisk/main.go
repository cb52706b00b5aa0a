package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Ali-A-Asfour/fwrisk/internal/api"
	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
	"github.com/Ali-A-Asfour/fwrisk/internal/parser"
	"github.com/Ali-A-Asfour/fwrisk/internal/reporting"
	"github.com/Ali-A-Asfour/fwrisk/internal/rules"
	"github.com/Ali-A-Asfour/fwrisk/internal/rulesdsl"
	"github.com/Ali-A-Asfour/fwrisk/internal/scoring"
	"github.com/Ali-A-Asfour/fwrisk/internal/security"
	"github.com/Ali-A-Asfour/fwrisk/internal/shared"
	"github.com/Ali-A-Asfour/fwrisk/internal/storage"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "audit":
		auditCmd(os.Args[2:])
	case "report":
		reportCmd(os.Args[2:])
	case "diff":
		diffCmd(os.Args[2:])
	case "serve":
		serveCmd(os.Args[2:])
	case "user-add":
		userAddCmd(os.Args[2:])
	case "version":
		fmt.Println("fwrisk IR:", ir.Version)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `fwrisk – Firewall Configuration Risk Auditor

Usage:
  fwrisk audit    --path <exports-dir> --out <reports-dir> [--db ./fwrisk.db] [--rules-pack ./rules.yaml] [--config ./configs/fwrisk.yaml]
  fwrisk report   --audit <audit-id>   --out <reports-dir> [--db ./fwrisk.db] [--config ./configs/fwrisk.yaml]
  fwrisk diff     --base <audit-id> --head <audit-id> --out <reports-dir> [--db ./fwrisk.db]
  fwrisk serve    [--addr :8080] [--db ./fwrisk.db] [--config ./configs/fwrisk.yaml]
  fwrisk user-add --username <name> --password <pw> [--role admin|viewer] [--db ./fwrisk.db]
  fwrisk version
`)
}

func applyRuleSettings(cfg shared.Config) {
	rules.SetSettings(rules.Settings{
		SeverityThreshold: rules.ParseSeverity(cfg.Rules.SeverityThreshold),
		Disabled:          cfg.DisabledSet(),
	})
}

func auditCmd(args []string) {
	fs := flag.NewFlagSet("audit", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	inPath := fs.String("path", "", "Path to device export file or directory")
	outDir := fs.String("out", "", "Output directory for reports")
	dbPath := fs.String("db", "", "SQLite database path")
	rulesPack := fs.String("rules-pack", "", "YAML custom rules pack (optional)")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	// precedence: flags > config > defaults
	if *inPath == "" && len(cfg.Analysis.Sources) > 0 {
		*inPath = cfg.Analysis.Sources[0]
	}
	if *outDir == "" {
		*outDir = cfg.Reporting.OutDir
	}
	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}
	if *rulesPack == "" {
		*rulesPack = cfg.Analysis.RulesPack
	}

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "audit: --path (or analysis.sources in config) is required")
		os.Exit(2)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "audit: cannot create out dir:", err)
		os.Exit(1)
	}

	applyRuleSettings(cfg)
	if *rulesPack != "" {
		n, err := rulesdsl.LoadAndRegister(*rulesPack)
		if err != nil {
			slog.Error("rules pack error", "err", err)
			os.Exit(1)
		}
		slog.Info("custom rules registered", "count", n)
	}

	// Parse
	audit, diags := parser.Parse(*inPath)
	if len(diags.Warnings) > 0 {
		slog.Warn("parse warnings", "warnings", diags.Warnings)
	}
	audit.ID = fmt.Sprintf("audit-%d", time.Now().Unix())
	audit.StartedAt = time.Now().UTC()
	audit.Context.RuleSeverityThreshold = cfg.Rules.SeverityThreshold
	audit.Context.DisabledRules = cfg.Rules.Disabled

	// Evaluate
	audit.Findings = rules.Evaluate(&audit)

	// Active waivers suppress accepted findings before scoring.
	db, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		slog.Error("db open error", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.CreateSchema(); err != nil {
		slog.Error("db schema error", "err", err)
		os.Exit(1)
	}
	if ws, werr := db.ListWaivers(true); werr == nil && len(ws) > 0 {
		var waived int
		audit.Findings, waived = rules.ApplyWaivers(audit.Findings, ws)
		if waived > 0 {
			slog.Info("waivers applied", "suppressed", waived)
		}
	}

	audit.Score = scoring.Score(audit.Findings)

	if err := db.SaveAudit(&audit); err != nil {
		slog.Error("db save audit error", "err", err)
		os.Exit(1)
	}

	jsonPath, _ := reporting.WriteJSON(audit.ID, *outDir, &audit)
	htmlPath, _ := reporting.WriteHTML(audit.ID, *outDir, &audit)
	slog.Info("audit complete",
		"audit", audit.ID,
		"devices", len(audit.Devices),
		"findings", len(audit.Findings),
		"score", audit.Score.Value,
		"json", jsonPath,
		"html", htmlPath,
		"db", filepath.Clean(*dbPath),
	)
	fmt.Printf("Audit OK\n  Audit: %s\n  Score: %d (%s)\n  JSON: %s\n  HTML: %s\n  DB: %s\n",
		audit.ID, audit.Score.Value, audit.Score.Grade, jsonPath, htmlPath, filepath.Clean(*dbPath))
}

func reportCmd(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	auditID := fs.String("audit", "", "Audit ID")
	outDir := fs.String("out", "", "Output directory")
	dbPath := fs.String("db", "", "SQLite database path")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *outDir == "" {
		*outDir = cfg.Reporting.OutDir
	}
	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}
	if *auditID == "" {
		fmt.Fprintln(os.Stderr, "report: --audit is required")
		os.Exit(2)
	}

	db, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		slog.Error("db open error", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	audit, err := db.LoadAudit(*auditID)
	if err != nil {
		slog.Error("load audit error", "err", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		slog.Error("cannot create out dir", "err", err)
		os.Exit(1)
	}
	jsonPath, _ := reporting.WriteJSON(audit.ID, *outDir, &audit)
	htmlPath, _ := reporting.WriteHTML(audit.ID, *outDir, &audit)
	fmt.Printf("Report OK\n  Audit: %s\n  JSON: %s\n  HTML: %s\n", audit.ID, jsonPath, htmlPath)
}

func diffCmd(args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	base := fs.String("base", "", "Base audit ID")
	head := fs.String("head", "", "Head audit ID")
	outDir := fs.String("out", "", "Output directory")
	dbPath := fs.String("db", "", "SQLite database path")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *outDir == "" {
		*outDir = cfg.Reporting.OutDir
	}
	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}
	if *base == "" || *head == "" {
		fmt.Fprintln(os.Stderr, "diff: --base and --head are required")
		os.Exit(2)
	}
	db, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		slog.Error("db open error", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ba, err := db.LoadAudit(*base)
	if err != nil {
		slog.Error("load base audit error", "err", err)
		os.Exit(1)
	}
	ha, err := db.LoadAudit(*head)
	if err != nil {
		slog.Error("load head audit error", "err", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		slog.Error("cannot create out dir", "err", err)
		os.Exit(1)
	}
	path, _ := reporting.WriteDiffJSON(*base, *head, *outDir, &ba, &ha)
	fmt.Printf("Diff OK\n  %s\n", path)
}

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	addr := fs.String("addr", "", "Listen address")
	dbPath := fs.String("db", "", "SQLite database path")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	logger := shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *addr == "" {
		*addr = cfg.Server.Addr
	}
	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}

	applyRuleSettings(cfg)

	db, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		slog.Error("db open error", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.CreateSchema(); err != nil {
		slog.Error("db schema error", "err", err)
		os.Exit(1)
	}

	srv := &api.Server{
		DB:              db,
		UserStore:       db,
		Logger:          logger,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		SessionDuration: time.Duration(cfg.Server.SessionHours) * time.Hour,
	}
	slog.Info("serving", "addr", *addr, "db", filepath.Clean(*dbPath))
	if err := http.ListenAndServe(*addr, srv.Routes()); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}

func userAddCmd(args []string) {
	fs := flag.NewFlagSet("user-add", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	username := fs.String("username", "", "Username")
	password := fs.String("password", "", "Password")
	role := fs.String("role", "viewer", "Role: admin|viewer")
	dbPath := fs.String("db", "", "SQLite database path")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}
	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "user-add: --username and --password are required")
		os.Exit(2)
	}

	hash, err := security.HashPassword(*password)
	if err != nil {
		slog.Error("hash error", "err", err)
		os.Exit(1)
	}
	db, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		slog.Error("db open error", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.CreateSchema(); err != nil {
		slog.Error("db schema error", "err", err)
		os.Exit(1)
	}
	id, err := db.CreateUser(*username, hash, *role)
	if err != nil {
		slog.Error("create user error", "err", err)
		os.Exit(1)
	}
	fmt.Printf("User OK\n  ID: %d\n  Username: %s\n  Role: %s\n", id, *username, *role)
}
