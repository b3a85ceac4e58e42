package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lokchuen/congkit/pkg/congkit"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Table.Scheme != "v3" || cfg.Table.Preset != "chinese" {
		t.Errorf("Unexpected table defaults: %+v", cfg.Table)
	}
	if cfg.CLI.DefaultLimit != 24 || !cfg.CLI.ShowRadicals {
		t.Errorf("Unexpected CLI defaults: %+v", cfg.CLI)
	}
	if cfg.Server.MaxLimit != 64 || cfg.Server.MaxPatterns != 32 {
		t.Errorf("Unexpected server defaults: %+v", cfg.Server)
	}
}

func TestVersionAndFilter(t *testing.T) {
	testCases := []struct {
		scheme  string
		preset  string
		version congkit.Version
		filter  congkit.Filter
		wantErr bool
	}{
		{"v3", "chinese", congkit.V3, congkit.FilterChinese(), false},
		{"v5", "japanese", congkit.V5, congkit.FilterJapanese(), false},
		{"", "", congkit.V3, congkit.FilterChinese(), false},
		{"v5", "all", congkit.V5, congkit.FilterAll(), false},
		{"v4", "chinese", congkit.V3, congkit.Filter{}, true},
		{"v3", "korean", congkit.V3, congkit.Filter{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.scheme+"/"+tc.preset, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Table.Scheme = tc.scheme
			cfg.Table.Preset = tc.preset

			version, verr := cfg.Version()
			filter, ferr := cfg.TableFilter()
			if tc.wantErr {
				if verr == nil && ferr == nil {
					t.Fatal("Expected an error")
				}
				return
			}
			if verr != nil || ferr != nil {
				t.Fatalf("Unexpected errors: %v, %v", verr, ferr)
			}
			if version != tc.version {
				t.Errorf("Version = %v, want %v", version, tc.version)
			}
			if filter != tc.filter {
				t.Errorf("Filter = %+v, want %+v", filter, tc.filter)
			}
		})
	}
}

func TestCustomFilterPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Table.Preset = "custom"
	cfg.Filter = congkit.Filter{Punctuation: true, Misc: true}

	filter, err := cfg.TableFilter()
	if err != nil {
		t.Fatalf("TableFilter failed: %v", err)
	}
	if !filter.Punctuation || !filter.Misc || filter.Chinese {
		t.Errorf("Custom filter not honored: %+v", filter)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "congkit.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Config file was not created: %v", err)
	}
	if cfg.Table.Scheme != "v3" {
		t.Errorf("Unexpected scheme: %q", cfg.Table.Scheme)
	}

	// Second init loads the existing file.
	again, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig reload failed: %v", err)
	}
	if again.Table.Scheme != cfg.Table.Scheme || again.CLI.DefaultLimit != cfg.CLI.DefaultLimit {
		t.Error("Reloaded config differs from created config")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "congkit.toml")
	content := `
[table]
path = "custom/table.txt"
scheme = "v5"
preset = "all"

[cli]
default_limit = 8
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Table.Path != "custom/table.txt" || cfg.Table.Scheme != "v5" || cfg.Table.Preset != "all" {
		t.Errorf("Table section not loaded: %+v", cfg.Table)
	}
	if cfg.CLI.DefaultLimit != 8 {
		t.Errorf("CLI limit = %d, want 8", cfg.CLI.DefaultLimit)
	}
	// Untouched sections keep defaults.
	if cfg.Server.MaxLimit != 64 {
		t.Errorf("Server defaults lost: %+v", cfg.Server)
	}
}
