package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(wd); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return home, wd
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultGemCrushConfig() {
		t.Errorf("embedded defaults %+v differ from hardcoded %+v", cfg, DefaultGemCrushConfig())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != DefaultGemCrushConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  size: 8\nrules:\n  clear_chains: false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Size != 8 {
		t.Errorf("Board.Size = %d, expected 8", cfg.Board.Size)
	}
	if cfg.Rules.ClearChains {
		t.Error("ClearChains should be overridden to false")
	}
	if cfg.Rules.MoveBudget != 20 || cfg.Display.CellWidth != 4 {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing explicit config")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, wd := isolate(t)
	writeFile(t, filepath.Join(wd, "configs", FileName), "board:\n  size: 5\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("local config should apply, got size %d", cfg.Board.Size)
	}

	writeFile(t, filepath.Join(home, ".gemcrush", "configs", FileName), "board:\n  size: 9\n")

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Size != 9 {
		t.Errorf("user config should win over local, got size %d", cfg.Board.Size)
	}
}

func TestLoadSkipsBrokenSearchFiles(t *testing.T) {
	_, wd := isolate(t)
	writeFile(t, filepath.Join(wd, "configs", FileName), "board: [not, a, map\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != DefaultGemCrushConfig() {
		t.Errorf("broken search file should be skipped, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GemCrushConfig)
		wantErr string
	}{
		{"defaults", func(*GemCrushConfig) {}, ""},
		{"smallest board", func(c *GemCrushConfig) { c.Board.Size = 3 }, ""},
		{"largest board", func(c *GemCrushConfig) { c.Board.Size = 12 }, ""},
		{"board too small", func(c *GemCrushConfig) { c.Board.Size = 2 }, "board.size"},
		{"board too large", func(c *GemCrushConfig) { c.Board.Size = 13 }, "board.size"},
		{"zero budget", func(c *GemCrushConfig) { c.Rules.MoveBudget = 0 }, "rules.move_budget"},
		{"negative target", func(c *GemCrushConfig) { c.Rules.WinScore = -1 }, "rules.win_score"},
		{"zero cell width", func(c *GemCrushConfig) { c.Display.CellWidth = 0 }, "display.cell_width"},
		{"zero cell height", func(c *GemCrushConfig) { c.Display.CellHeight = 0 }, "display.cell_height"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGemCrushConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "board:\n  size: 40\n")

	if _, err := Load(path); err == nil {
		t.Error("expected validation error")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := ClassicGemCrushConfig()
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "clear_chains: false") {
		t.Errorf("expected snake_case keys in output:\n%s", data)
	}

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip changed config: %+v", got)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"logs/game.log", "logs/game.log"},
		{"/var/log/game.log", "/var/log/game.log"},
		{"~/.gemcrush/game.log", filepath.Join(home, ".gemcrush", "game.log")},
	}

	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
