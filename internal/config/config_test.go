package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"

	"harness/pkg/harness"
)

// setNoColor overrides fatih/color's terminal detection for one test.
func setNoColor(t *testing.T, noColor bool) {
	t.Helper()
	saved := color.NoColor
	color.NoColor = noColor
	t.Cleanup(func() { color.NoColor = saved })
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestNew(t *testing.T) {
	setNoColor(t, false)
	cfg := New()

	if cfg.NameWidth != harness.DefaultNameWidth {
		t.Errorf("expected NameWidth %d, got %d", harness.DefaultNameWidth, cfg.NameWidth)
	}

	if !cfg.Color {
		t.Error("expected color to be enabled on a terminal")
	}

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected LogLevel %s, got %s", DefaultLogLevel, cfg.LogLevel)
	}

	if cfg.Flags.EnvFile != DefaultEnvFile {
		t.Errorf("expected EnvFile %s, got %s", DefaultEnvFile, cfg.Flags.EnvFile)
	}
}

func TestNew_ColorFollowsTerminalDetection(t *testing.T) {
	setNoColor(t, true)
	t.Setenv(EnvNoColor, "")

	if New().Color {
		t.Error("expected color to be disabled when output is not a terminal")
	}

	cfg, err := Load(Flags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Color {
		t.Error("expected loaded config to keep color disabled")
	}
}

func TestConfig_GetFilter(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		args     []string
		expected string
	}{
		{
			name:     "no filter",
			config:   &Config{},
			expected: "",
		},
		{
			name:     "configured filter",
			config:   &Config{Filter: "math."},
			expected: "math.",
		},
		{
			name:     "positional argument wins",
			config:   &Config{Filter: "math."},
			args:     []string{"stack."},
			expected: "stack.",
		},
		{
			name:     "empty positional argument is ignored",
			config:   &Config{Filter: "math."},
			args:     []string{""},
			expected: "math.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetFilter(tt.args)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_LoadFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("overrides only given keys", func(t *testing.T) {
		setNoColor(t, false)
		path := writeFile(t, tmpDir, "harness.yaml", "filter: stack.\nname_width: 40\n")
		cfg := New()
		if err := cfg.LoadFile(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Filter != "stack." {
			t.Errorf("expected filter stack., got %s", cfg.Filter)
		}
		if cfg.NameWidth != 40 {
			t.Errorf("expected name width 40, got %d", cfg.NameWidth)
		}
		if !cfg.Color {
			t.Error("color should keep its default")
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		if err := New().LoadFile(filepath.Join(tmpDir, "missing.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("returns error for invalid yaml", func(t *testing.T) {
		path := writeFile(t, tmpDir, "bad.yaml", "name_width: [1, 2\n")
		if err := New().LoadFile(path); err == nil {
			t.Error("expected error for invalid yaml")
		}
	})
}

func TestConfig_LoadEnv(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("reads dotenv file", func(t *testing.T) {
		// godotenv never overrides variables that are already set.
		for _, env := range []string{EnvFilter, EnvFailFast} {
			t.Setenv(env, "")
			os.Unsetenv(env)
		}
		envFile := writeFile(t, tmpDir, ".env", "HARNESS_FILTER=queue.\nHARNESS_FAIL_FAST=true\n")

		cfg := New()
		if err := cfg.LoadEnv(envFile); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Filter != "queue." {
			t.Errorf("expected filter queue., got %s", cfg.Filter)
		}
		if !cfg.FailFast {
			t.Error("expected fail fast from env file")
		}
	})

	t.Run("missing dotenv file is ignored", func(t *testing.T) {
		if err := New().LoadEnv(filepath.Join(tmpDir, "none.env")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv(EnvNameWidth, "30")
		t.Setenv(EnvNoColor, "1")
		t.Setenv(EnvLogLevel, "warn")

		cfg := New()
		if err := cfg.LoadEnv(""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.NameWidth != 30 {
			t.Errorf("expected name width 30, got %d", cfg.NameWidth)
		}
		if cfg.Color {
			t.Error("expected color disabled")
		}
		if cfg.LogLevel != "warn" {
			t.Errorf("expected log level warn, got %s", cfg.LogLevel)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, env := range []string{EnvNameWidth, EnvNoColor, EnvFailFast} {
			t.Run(env, func(t *testing.T) {
				t.Setenv(env, "not-a-value")
				if err := New().LoadEnv(""); err == nil {
					t.Errorf("expected error for invalid %s", env)
				}
			})
		}
	})
}

func TestLoad_Precedence(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "harness.yaml", "filter: file.\nname_width: 50\nfail_fast: true\n")
	t.Setenv(EnvNameWidth, "60")

	cfg, err := Load(Flags{ConfigFile: path, NameWidth: 70, NoColor: true, Verbose: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Filter != "file." {
		t.Errorf("expected filter from file, got %s", cfg.Filter)
	}
	if cfg.NameWidth != 70 {
		t.Errorf("expected flag to win, got %d", cfg.NameWidth)
	}
	if !cfg.FailFast {
		t.Error("expected fail fast from file")
	}
	if cfg.Color {
		t.Error("expected --no-color to disable color")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug log level, got %s", cfg.LogLevel)
	}
}
