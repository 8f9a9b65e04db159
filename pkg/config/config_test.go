package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func validConfig() (cfg Config) {
	cfg = Config{
		Company:   "Your Company",
		Role:      "Software Engineer",
		OutputDir: "./output",
		Typesetter: TypesetterConfig{
			Command: "pdflatex",
			Timeout: 2 * time.Minute,
		},
		Selection: SelectionConfig{
			TieBreak:     "lexical",
			KeywordMatch: "substring",
		},
	}
	return cfg
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	profilePath := filepath.Join(tmpDir, "profile.yaml")

	err := os.WriteFile(profilePath, []byte("name: x\n"), 0600)
	if err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}

	content := `profile_location: ` + profilePath + `
company: Acme
output_dir: ./applications
typesetter:
  command: lualatex
  timeout: 45s
selection:
  tie_break: chronological
  keyword_match: exact
logging:
  json: true
`

	err = os.WriteFile(configPath, []byte(content), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Company != "Acme" {
		t.Errorf("Expected company Acme, got %s", cfg.Company)
	}

	if cfg.Role != "Software Engineer" {
		t.Errorf("Expected default role, got %s", cfg.Role)
	}

	if cfg.Typesetter.Command != "lualatex" {
		t.Errorf("Expected typesetter lualatex, got %s", cfg.Typesetter.Command)
	}

	if cfg.Typesetter.Timeout != 45*time.Second {
		t.Errorf("Expected timeout 45s, got %s", cfg.Typesetter.Timeout)
	}

	if cfg.Selection.TieBreak != "chronological" {
		t.Errorf("Expected chronological tie-break, got %s", cfg.Selection.TieBreak)
	}

	if !cfg.Logging.JSON {
		t.Error("Expected JSON logging to be enabled")
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}

	if cfg.OutputDir != "./output" {
		t.Errorf("Expected default output dir, got %s", cfg.OutputDir)
	}

	if cfg.Typesetter.Timeout != 2*time.Minute {
		t.Errorf("Expected default timeout 2m, got %s", cfg.Typesetter.Timeout)
	}

	if cfg.Company != "Your Company" {
		t.Errorf("Expected default company, got %s", cfg.Company)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CV_TAILOR_OUTPUT_DIR", "/tmp/cv-out")
	t.Setenv("CV_TAILOR_TYPESETTER_SKIP", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.OutputDir != "/tmp/cv-out" {
		t.Errorf("Expected env output dir, got %s", cfg.OutputDir)
	}

	if !cfg.Typesetter.Skip {
		t.Error("Expected typesetter.skip from environment")
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Expected error loading nonexistent config, got nil")
	}
}

func TestLoadInvalidValue(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	err := os.WriteFile(configPath, []byte("selection:\n  tie_break: random\n"), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err = Load(configPath)
	if err == nil {
		t.Error("Expected validation error, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantError bool
	}{
		{
			name:      "valid config",
			mutate:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "empty enums select defaults",
			mutate:    func(c *Config) { c.Selection = SelectionConfig{} },
			wantError: false,
		},
		{
			name:      "missing output dir",
			mutate:    func(c *Config) { c.OutputDir = "" },
			wantError: true,
		},
		{
			name:      "zero timeout",
			mutate:    func(c *Config) { c.Typesetter.Timeout = 0 },
			wantError: true,
		},
		{
			name:      "unknown keyword match",
			mutate:    func(c *Config) { c.Selection.KeywordMatch = "fuzzy" },
			wantError: true,
		},
		{
			name:      "nonexistent profile file",
			mutate:    func(c *Config) { c.ProfileLocation = "/nonexistent/profile.yaml" },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestSelector(t *testing.T) {
	cfg := validConfig()
	cfg.Selection.TieBreak = "chronological"

	s, err := cfg.Selector()
	if err != nil {
		t.Fatalf("Failed to build selector: %v", err)
	}

	if s == nil {
		t.Fatal("Expected selector, got nil")
	}

	cfg.Selection.TieBreak = "random"
	_, err = cfg.Selector()
	if err == nil {
		t.Error("Expected error for unknown tie-break, got nil")
	}
}

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")
	profilePath := filepath.Join(tmpDir, "profile.yaml")

	written, err := InitConfig(configPath, profilePath)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	if written != configPath {
		t.Errorf("Expected path %s, got %s", configPath, written)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	var raw map[string]any
	err = yaml.Unmarshal(data, &raw)
	if err != nil {
		t.Fatalf("Failed to parse generated config: %v", err)
	}

	if raw["profile_location"] != profilePath {
		t.Errorf("Expected profile_location %s, got %v", profilePath, raw["profile_location"])
	}

	typesetter, ok := raw["typesetter"].(map[string]any)
	if !ok {
		t.Fatalf("Expected typesetter section, got %T", raw["typesetter"])
	}

	if typesetter["timeout"] != "2m" {
		t.Errorf("Expected timeout 2m, got %v", typesetter["timeout"])
	}

	// The generated file must load once the profile exists.
	err = os.WriteFile(profilePath, []byte("name: x\n"), 0600)
	if err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load generated config: %v", err)
	}

	if cfg.Typesetter.Timeout != 2*time.Minute {
		t.Errorf("Expected timeout 2m, got %s", cfg.Typesetter.Timeout)
	}
}

func TestInitConfigAlreadyExists(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("{}"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err = InitConfig(configPath, "")
	if err == nil {
		t.Error("Expected error when config already exists, got nil")
	}
}
