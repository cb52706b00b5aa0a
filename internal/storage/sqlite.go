package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite" // CGO-free SQLite driver

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

// DB is the concrete storage backed by SQLite.
type DB struct {
	conn *sql.DB
}

// OpenSQLite opens (and creates if missing) a SQLite DB at path.
func OpenSQLite(path string) (*DB, error) {
	// Pragmas via DSN keep it portable with the modernc driver.
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)"
	c, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	return &DB{conn: c}, nil
}

func (db *DB) Close() error { return db.conn.Close() }

// CreateSchema ensures all tables exist.
func (db *DB) CreateSchema() error {
	_, err := db.conn.Exec(`
CREATE TABLE IF NOT EXISTS audits (
  id          TEXT PRIMARY KEY,
  started_at  TEXT,          -- RFC3339
  source      TEXT,
  ir_version  TEXT,
  score       INTEGER,
  grade       TEXT,
  audit_json  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS findings (
  id          TEXT,
  audit_id    TEXT NOT NULL,
  device      TEXT,
  risk_type   TEXT,
  severity    TEXT,
  category    TEXT,
  description TEXT,
  reference   TEXT,
  PRIMARY KEY (id, audit_id),
  FOREIGN KEY(audit_id) REFERENCES audits(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_findings_audit ON findings(audit_id);
CREATE INDEX IF NOT EXISTS idx_findings_risk ON findings(risk_type);

CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT UNIQUE NOT NULL,
  pass_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'viewer',
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
  token TEXT PRIMARY KEY,
  user_id INTEGER NOT NULL,
  expires_at TEXT NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS audit_log (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  ts TEXT NOT NULL,
  username TEXT,
  action TEXT NOT NULL,
  resource TEXT,
  meta_json TEXT
);

CREATE TABLE IF NOT EXISTS waivers (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  rule_id     TEXT NOT NULL,
  device      TEXT,              -- optional exact match; NULL = any
  reference   TEXT,              -- optional exact match; NULL = any
  pattern_sub TEXT,              -- optional substring to match the description
  reason      TEXT NOT NULL,
  expires_at  TEXT NOT NULL,     -- RFC3339Nano
  created_by  TEXT NOT NULL,
  created_at  TEXT NOT NULL,
  revoked_at  TEXT               -- NULL = active
);
`)
	return err
}

// SaveAudit upserts an audit JSON and (re)writes its findings.
func (db *DB) SaveAudit(audit *ir.Audit) error {
	b, err := json.Marshal(audit)
	if err != nil {
		return err
	}
	ts := audit.StartedAt.UTC().Format(time.RFC3339Nano)

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO audits (id, started_at, source, ir_version, score, grade, audit_json)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET started_at=excluded.started_at, source=excluded.source,
           ir_version=excluded.ir_version, score=excluded.score, grade=excluded.grade, audit_json=excluded.audit_json`,
		audit.ID, ts, audit.Source, audit.IRVersion, audit.Score.Value, audit.Score.Grade, string(b),
	); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM findings WHERE audit_id = ?`, audit.ID); err != nil {
		return err
	}
	if len(audit.Findings) > 0 {
		stmt, err := tx.Prepare(`
			INSERT INTO findings
			(id, audit_id, device, risk_type, severity, category, description, reference)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, f := range audit.Findings {
			if _, err := stmt.Exec(
				f.ID,
				audit.ID,
				f.Device,
				string(f.RiskType),
				string(f.Severity),
				string(f.Category),
				f.Description,
				f.Reference,
			); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// LoadAudit returns the full audit (from stored JSON).
func (db *DB) LoadAudit(id string) (ir.Audit, error) {
	var s string
	row := db.conn.QueryRow(`SELECT audit_json FROM audits WHERE id = ?`, id)
	if err := row.Scan(&s); err != nil {
		return ir.Audit{}, err
	}
	var audit ir.Audit
	if err := json.Unmarshal([]byte(s), &audit); err != nil {
		return ir.Audit{}, err
	}
	return audit, nil
}

// LoadLatestAudit returns the most recently started audit.
func (db *DB) LoadLatestAudit() (ir.Audit, error) {
	var id string
	row := db.conn.QueryRow(`SELECT id FROM audits ORDER BY started_at DESC, id DESC LIMIT 1`)
	if err := row.Scan(&id); err != nil {
		return ir.Audit{}, err
	}
	return db.LoadAudit(id)
}
