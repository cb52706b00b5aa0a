package storage

import (
	"database/sql"
	"time"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

// ListAudits returns a lightweight list of audits with finding counts.
func (db *DB) ListAudits(limit, offset int) ([]AuditRow, error) {
	const q = `
		SELECT a.id, a.started_at, a.source, a.ir_version, a.score, a.grade,
		       (SELECT COUNT(1) FROM findings f WHERE f.audit_id = a.id) AS findings
		  FROM audits a
		 ORDER BY a.started_at DESC, a.id DESC
		 LIMIT ? OFFSET ?`
	rows, err := db.conn.Query(q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AuditRow
	for rows.Next() {
		var ar AuditRow
		var startedAtStr string
		if err := rows.Scan(&ar.ID, &startedAtStr, &ar.Source, &ar.IRVersion, &ar.Score, &ar.Grade, &ar.Findings); err != nil {
			return nil, err
		}
		// Parse RFC3339Nano first, fall back to RFC3339
		if t, err := time.Parse(time.RFC3339Nano, startedAtStr); err == nil {
			ar.StartedAt = t
		} else if t2, err2 := time.Parse(time.RFC3339, startedAtStr); err2 == nil {
			ar.StartedAt = t2
		}
		out = append(out, ar)
	}
	return out, rows.Err()
}

// ListFindings returns findings for an audit at or above a minimum severity.
func (db *DB) ListFindings(auditID string, minSeverity ir.Severity) ([]ir.Finding, error) {
	const q = `
		SELECT id, device, risk_type, severity, category, description, reference
		  FROM findings
		 WHERE audit_id = ?
		   AND (CASE severity WHEN 'critical' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END)
		       >= (CASE ? WHEN 'critical' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END)
		 ORDER BY
		       (CASE severity WHEN 'critical' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END) DESC,
		       risk_type, device, reference, id`
	rows, err := db.conn.Query(q, auditID, string(minSeverity))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ir.Finding
	for rows.Next() {
		var f ir.Finding
		var riskType, severity, category string
		if err := rows.Scan(&f.ID, &f.Device, &riskType, &severity, &category, &f.Description, &f.Reference); err != nil {
			return nil, err
		}
		f.RiskType = ir.RiskType(riskType)
		f.Severity = ir.Severity(severity)
		f.Category = ir.Category(category)
		out = append(out, f)
	}
	return out, rows.Err()
}

// HasAudit reports whether an audit with the given id exists.
func (db *DB) HasAudit(id string) (bool, error) {
	const q = `SELECT 1 FROM audits WHERE id = ? LIMIT 1`
	var one int
	err := db.conn.QueryRow(q, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}
