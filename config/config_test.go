package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vladimirvivien/csdview/element"
	"github.com/vladimirvivien/csdview/indicator"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("Expected non-nil config")
	}
	if cfg.Policy() != indicator.PaletteCycle {
		t.Errorf("Expected default palette policy 'cycle', got '%s'", cfg.PalettePolicy)
	}
	if cfg.MarkerHeight != 0.9 {
		t.Errorf("Expected default marker height 0.9, got %v", cfg.MarkerHeight)
	}
	if cfg.Columns != 4 {
		t.Errorf("Expected default columns 4, got %d", cfg.Columns)
	}
	if cfg.ShowLines || cfg.Demo {
		t.Errorf("Expected show lines and demo off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(c *Config)
		contains []string
	}{
		{
			name:   "reject policy",
			modify: func(c *Config) { c.PalettePolicy = "reject" },
		},
		{
			name:     "unknown policy",
			modify:   func(c *Config) { c.PalettePolicy = "random" },
			contains: []string{"invalid palette-policy: random"},
		},
		{
			name:     "marker height above axes",
			modify:   func(c *Config) { c.MarkerHeight = 1.5 },
			contains: []string{"marker-height must be within [0, 1], got 1.5"},
		},
		{
			name:     "no columns",
			modify:   func(c *Config) { c.Columns = 0 },
			contains: []string{"columns must be >= 1, got 0"},
		},
		{
			name: "all reported",
			modify: func(c *Config) {
				c.PalettePolicy = "random"
				c.MarkerHeight = -1
				c.Columns = -2
			},
			contains: []string{"palette-policy", "marker-height", "columns"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if len(tt.contains) == 0 {
				if err != nil {
					t.Errorf("Expected valid config, got error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			for _, want := range tt.contains {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Expected error to contain %q, got %q", want, err.Error())
				}
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("CSDVIEW_PALETTE_POLICY", "reject")
	t.Setenv("CSDVIEW_MARKER_HEIGHT", "0.5")
	t.Setenv("CSDVIEW_SHOW_LINES", "true")

	cfg := DefaultConfig()
	if err := cfg.FromEnv(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Policy() != indicator.PaletteReject {
		t.Errorf("Expected palette policy 'reject', got '%s'", cfg.PalettePolicy)
	}
	if cfg.MarkerHeight != 0.5 {
		t.Errorf("Expected marker height 0.5, got %v", cfg.MarkerHeight)
	}
	if !cfg.ShowLines {
		t.Errorf("Expected show lines on")
	}
	if cfg.Columns != 4 {
		t.Errorf("Expected unset columns to keep default 4, got %d", cfg.Columns)
	}
}

func TestFromEnv_Malformed(t *testing.T) {
	t.Setenv("CSDVIEW_COLUMNS", "four")

	if err := DefaultConfig().FromEnv(); err == nil {
		t.Error("Expected error for malformed CSDVIEW_COLUMNS, got nil")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "palette_policy: reject\ncolumns: 3\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Policy() != indicator.PaletteReject {
		t.Errorf("Expected palette policy 'reject', got '%s'", cfg.PalettePolicy)
	}
	if cfg.Columns != 3 {
		t.Errorf("Expected columns 3, got %d", cfg.Columns)
	}
	if cfg.MarkerHeight != 0.9 {
		t.Errorf("Expected missing key to keep default 0.9, got %v", cfg.MarkerHeight)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Columns != 4 {
		t.Errorf("Expected defaults, got columns %d", cfg.Columns)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := CreateDefaultConfigFile(path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Expected saved defaults, got %+v", cfg)
	}
}

func TestLoadElements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elements.yaml")
	data := `persistent:
- symbol: H
  name: Hydrogen
  atomicWeight: 1
  atomicNumber: 1
variable:
- symbol: Xe
  name: Xenon
  atomicWeight: 131
  atomicNumber: 54
- symbol: Ne
  name: Neon
  atomicWeight: 20
  atomicNumber: 10
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	list, err := LoadElements(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(list.Persistent) != 1 || list.Persistent[0] != element.New("H", "Hydrogen", 1, 1) {
		t.Errorf("Expected persistent [H-1], got %v", list.Persistent)
	}
	if len(list.Variable) != 2 || list.Variable[1].Symbol != "Ne" {
		t.Errorf("Expected variable [Xe-131 Ne-20], got %v", list.Variable)
	}
	if len(list.All()) != 3 {
		t.Errorf("Expected 3 elements, got %d", len(list.All()))
	}
}

func TestLoadElements_Default(t *testing.T) {
	list, err := LoadElements("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(list.Persistent) != len(element.Persistent) || len(list.Variable) != len(element.Variable) {
		t.Errorf("Expected built-in lists, got %v", list)
	}
}

func TestLoadElements_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		contains string
	}{
		{
			name:     "unknown key",
			data:     "persistent:\n- symbol: H\n  weight: 1\n",
			contains: "failed to parse",
		},
		{
			name:     "number above weight",
			data:     "variable:\n- symbol: Zz\n  atomicWeight: 2\n  atomicNumber: 5\n",
			contains: "atomic number must not exceed atomic weight",
		},
		{
			name:     "duplicate species",
			data:     "persistent:\n- {symbol: He, atomicWeight: 4, atomicNumber: 2}\nvariable:\n- {symbol: Helium, atomicWeight: 4, atomicNumber: 2}\n",
			contains: "same species as persistent[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "elements.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadElements(path)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Expected error to contain %q, got %q", tt.contains, err.Error())
			}
		})
	}
}
