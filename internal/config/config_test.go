package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trio/internal/tasks"
)

// =============================================================================
// DEFAULTS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "trio", cfg.Name)
	assert.Equal(t, 999, cfg.Input.MaxSentenceLength)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.DebugMode)
	assert.Equal(t, ThemeAuto, cfg.UX.Theme)
	require.NoError(t, cfg.Validate())

	a, b, err := cfg.Matrix.Operands()
	require.NoError(t, err)
	assert.Equal(t, tasks.ReferenceA, a)
	assert.Equal(t, tasks.ReferenceB, b)
}

func TestDefaultMatrixConfig_DoesNotAliasReference(t *testing.T) {
	cfg := DefaultMatrixConfig()
	cfg.A[0][0] = 42
	assert.Equal(t, 1, tasks.ReferenceA[0][0])
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Input, cfg.Input)
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("TRIO_LOG_LEVEL", "")
	t.Setenv("TRIO_DEBUG", "")

	path := filepath.Join(t.TempDir(), "nested", "trio.yaml")

	cfg := DefaultConfig()
	cfg.Input.MaxSentenceLength = 120
	cfg.Logging.Level = "debug"
	cfg.Matrix.A = [][]int{{1, 0, 0}, {0, 1, 0}}

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120, loaded.Input.MaxSentenceLength)
	assert.Equal(t, "debug", loaded.Logging.Level)
	assert.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}}, loaded.Matrix.A)
	assert.Equal(t, DefaultMatrixConfig().B, loaded.Matrix.B)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ux:\n  theme: dark\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, cfg.UX.Theme)
	assert.Equal(t, 999, cfg.Input.MaxSentenceLength)
	assert.Len(t, cfg.Matrix.B, 3)
}

func TestLoad_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: [unterminated"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_RejectsBadMatrixShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trio.yaml")
	body := "matrix:\n  b:\n    - [1, 2, 3, 4]\n    - [5, 6, 7]\n    - [9, 10, 11, 12]\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matrix.b row 1 must have 4 values")
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero sentence length",
			mutate:  func(c *Config) { c.Input.MaxSentenceLength = 0 },
			wantErr: "input.max_sentence_length",
		},
		{
			name:    "matrix a missing row",
			mutate:  func(c *Config) { c.Matrix.A = c.Matrix.A[:1] },
			wantErr: "matrix.a must have 2 rows",
		},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "invalid logging.level",
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging.format",
		},
		{
			name:    "bad theme",
			mutate:  func(c *Config) { c.UX.Theme = "neon" },
			wantErr: "invalid ux.theme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoggingConfig_Validate_IgnoresCase(t *testing.T) {
	for _, level := range []string{"DEBUG", "Info", "WARN", "Warning", "ERROR"} {
		cfg := LoggingConfig{Level: level, Format: "JSON"}
		assert.NoError(t, cfg.Validate(), level)
	}
}

func TestLoad_NormalizesLoggingCase(t *testing.T) {
	t.Setenv("TRIO_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "trio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: WARN\n  format: Json\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	cfg := LoggingConfig{}
	assert.False(t, cfg.IsCategoryEnabled("menu"), "debug mode off disables everything")

	cfg.DebugMode = true
	assert.True(t, cfg.IsCategoryEnabled("menu"))

	cfg.Categories = map[string]bool{"menu": false}
	assert.False(t, cfg.IsCategoryEnabled("menu"))
	assert.True(t, cfg.IsCategoryEnabled("tasks"), "unlisted categories stay enabled")
}
