package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Run("missing file keeps reference defaults", func(t *testing.T) {
		d, err := LoadDefaults(filepath.Join(t.TempDir(), "none.yaml"))
		if err != nil {
			t.Fatalf("LoadDefaults: %v", err)
		}
		if d.Ticker != "SPY" || d.Amount != 200 || d.Frequency != "monthly" {
			t.Errorf("unexpected defaults: %+v", d)
		}
	})

	t.Run("file overrides", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "psim.yaml")
		content := "ticker: AAPL\namount: 500\nfrequency: weekly\n"
		if err := os.WriteFile(file, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		d, err := LoadDefaults(file)
		if err != nil {
			t.Fatalf("LoadDefaults: %v", err)
		}
		if d.Ticker != "AAPL" || d.Amount != 500 || d.Frequency != "weekly" {
			t.Errorf("overrides not applied: %+v", d)
		}
		// Fields absent from the file keep their reference values.
		if d.LumpSum != 10000 || d.Start != "2020-01-01" {
			t.Errorf("untouched fields changed: %+v", d)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "psim.yaml")
		if err := os.WriteFile(file, []byte("ticker: [oops"), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, err := LoadDefaults(file); err == nil {
			t.Error("expected error for invalid yaml")
		}
	})
}
