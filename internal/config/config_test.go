package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FOOTBALLTEAM_LOG_LEVEL", "debug")
	t.Setenv("FOOTBALLTEAM_REPORT_STATS", "true")
	t.Setenv("FOOTBALLTEAM_GENERATE_COUNT", "42")

	v, err := New("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Report.Stats)
	assert.Equal(t, 42, cfg.Generate.Count)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "footballteam.yaml")
	content := "log:\n  format: json\ngenerate:\n  seed: 99\n  min: -5\n  max: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := New(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level, "unset keys keep defaults")
	assert.Equal(t, int64(99), cfg.Generate.Seed)
	assert.Equal(t, int64(-5), cfg.Generate.Min)
	assert.Equal(t, int64(5), cfg.Generate.Max)
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)
	v.Set("log.level", "loud")
	v.Set("log.format", "xml")
	v.Set("generate.count", -1)
	v.Set("generate.min", 10)
	v.Set("generate.max", 1)

	_, err = Load(v)
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 4)
	assert.Contains(t, err.Error(), "4 validation errors")
}

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Field: "log.level", Value: "loud", Message: "is invalid"}
	assert.Equal(t, "log.level: is invalid (got: loud)", err.Error())
	assert.Equal(t, "", ValidationErrors(nil).Error())
	assert.Equal(t, err.Error(), ValidationErrors{err}.Error())
}

func TestValidationErrors_JoinsMessages(t *testing.T) {
	errs := ValidationErrors{
		{Field: "log.level", Value: "loud", Message: "is invalid"},
		{Field: "generate.count", Value: -1, Message: "must be non-negative"},
	}
	assert.Equal(t,
		"2 validation errors: log.level: is invalid (got: loud); generate.count: must be non-negative (got: -1)",
		errs.Error())
}
