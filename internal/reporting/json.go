package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Ali-A-Asfour/fwrisk/internal/ir"
)

func WriteJSON(auditID, outDir string, audit *ir.Audit) (string, error) {
	path := filepath.Join(outDir, auditID+".json")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(audit); err != nil {
		return "", err
	}
	return path, nil
}
