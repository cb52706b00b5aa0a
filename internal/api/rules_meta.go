package api

import (
	"net/http"

	"github.com/Ali-A-Asfour/fwrisk/internal/rules"
)

// GET /api/v1/rules (inventory with metadata; read-only, no auth)
func (s *Server) handleRulesMeta(w http.ResponseWriter, r *http.Request) {
	type R struct {
		ID       string `json:"id"`
		Summary  string `json:"summary"`
		Severity string `json:"severity"`
		Category string `json:"category"`
	}
	var out []R
	for _, rr := range rules.List() {
		out = append(out, R{
			ID:       rr.ID,
			Summary:  rr.Summary,
			Severity: string(rr.Severity),
			Category: string(rr.Category),
		})
	}
	// stable order guaranteed by rules.List()
	writeJSON(w, http.StatusOK, map[string]any{"items": out, "count": len(out)})
}
