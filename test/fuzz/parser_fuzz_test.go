package fuzz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Ali-A-Asfour/fwrisk/internal/parser"
)

// Fuzz the parser with arbitrary export content to ensure we never panic.
// Malformed files must degrade to diagnostics, not crashes.
func FuzzParseNoPanic(f *testing.F) {
	seeds := [][]byte{
		[]byte(`{"device":"fw-a","config":{"rules":[]}}`),
		[]byte("device: fw-b\nconfig:\n  system_settings:\n    hostname: fw-b\n"),
		[]byte("config:\n  rules:\n    - name: r1\n      action: allow\n"),
		[]byte("{not json"),
		[]byte("\xff\xfe\x00 binary garbage"),
		[]byte("config: [this, is, the, wrong, shape]"),
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "fuzz.yaml"), data, 0o644); err != nil {
			t.Skipf("write failed: %v", err)
		}
		_, _ = parser.Parse(dir) // we only assert "no panic"
	})
}
