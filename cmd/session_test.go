package cmd

import (
	"testing"

	"github.com/nikogura/cv-tailor/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverrides(t *testing.T) {
	base := config.Config{
		Company:   "Your Company",
		Role:      "Software Engineer",
		OutputDir: "./output",
	}
	o := overrides{
		company:   "Acme",
		role:      "Staff Engineer",
		outputDir: "/tmp/out",
		profile:   "me.yaml",
		skipPDF:   true,
		json:      true,
		debug:     true,
	}

	t.Run("nothing changed keeps config", func(t *testing.T) {
		cfg := base
		applyOverrides(&cfg, o, func(string) bool { return false })
		assert.Equal(t, base, cfg)
	})

	t.Run("changed flags win", func(t *testing.T) {
		cfg := base
		applyOverrides(&cfg, o, func(string) bool { return true })

		assert.Equal(t, "Acme", cfg.Company)
		assert.Equal(t, "Staff Engineer", cfg.Role)
		assert.Equal(t, "/tmp/out", cfg.OutputDir)
		assert.Equal(t, "me.yaml", cfg.ProfileLocation)
		assert.True(t, cfg.Typesetter.Skip)
		assert.True(t, cfg.Logging.JSON)
		assert.True(t, cfg.Logging.Debug)
	})

	t.Run("only the named flag", func(t *testing.T) {
		cfg := base
		applyOverrides(&cfg, o, func(name string) bool { return name == "role" })

		assert.Equal(t, "Your Company", cfg.Company)
		assert.Equal(t, "Staff Engineer", cfg.Role)
		assert.Equal(t, "./output", cfg.OutputDir)
	})
}

func TestLoadProfileDefault(t *testing.T) {
	p, err := loadProfile("")
	require.NoError(t, err)
	assert.NotEmpty(t, p.Experience)
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := loadProfile("/nonexistent/profile.yaml")
	assert.Error(t, err)
}

func TestPastesJobText(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		interactive bool
		want        bool
	}{
		{name: "no argument", want: true},
		{name: "file argument", args: []string{"jd.txt"}, want: false},
		{name: "interactive overrides file", args: []string{"jd.txt"}, interactive: true, want: true},
		{name: "stdin stays stdin", args: []string{"-"}, interactive: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pastesJobText(tt.args, tt.interactive))
		})
	}
}
