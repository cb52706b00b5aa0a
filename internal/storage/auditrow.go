package storage

import "time"

// AuditRow is a lightweight listing row for /audits.
type AuditRow struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Source    string    `json:"source,omitempty"`
	IRVersion string    `json:"ir_version,omitempty"`
	Score     int       `json:"score"`
	Grade     string    `json:"grade,omitempty"`
	Findings  int       `json:"findings"`
}
