package config

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/hexcalc/internal/errors"
)

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	return ParseConfig("hexcalc", args, io.Discard)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)

	assert.Empty(t, cfg.Values)
	assert.Empty(t, cfg.InputFile)
	assert.Empty(t, cfg.OutputFile)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.JSON)
	assert.False(t, cfg.TUI)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, "default", cfg.Source())
}

func TestParseConfig_PositionalValues(t *testing.T) {
	cfg, err := parse(t, "-q", "283", "285", "-17")
	require.NoError(t, err)

	assert.True(t, cfg.Quiet)
	assert.Equal(t, []int64{283, 285, -17}, cfg.Values)
	assert.Equal(t, "args", cfg.Source())
}

func TestParseConfig_Flags(t *testing.T) {
	cfg, err := parse(t,
		"--input", "values.txt",
		"--output", "out.txt",
		"--workers", "4",
		"--chunk-size", "256",
		"--timeout", "30s",
		"--quiet",
		"--no-color",
	)
	require.NoError(t, err)

	assert.Equal(t, "values.txt", cfg.InputFile)
	assert.Equal(t, "out.txt", cfg.OutputFile)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 256, cfg.ChunkSize)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.True(t, cfg.Quiet)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "values.txt", cfg.Source())
}

func TestParseConfig_ShortAliases(t *testing.T) {
	cfg, err := parse(t, "-i", "-", "-o", "out.txt", "-v")
	require.NoError(t, err)

	assert.Equal(t, "-", cfg.InputFile)
	assert.Equal(t, "out.txt", cfg.OutputFile)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "stdin", cfg.Source())
}

func TestParseConfig_Help(t *testing.T) {
	_, err := parse(t, "--help")
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestParseConfig_InvalidValue(t *testing.T) {
	_, err := parse(t, "283", "abc")

	var parseErr apperrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "abc", parseErr.Token)
	assert.Equal(t, 2, parseErr.Position)
}

func TestParseConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"values and input are exclusive", []string{"--input", "f.txt", "283"}},
		{"workers below one", []string{"--workers", "0"}},
		{"chunk size below one", []string{"--chunk-size", "0"}},
		{"metrics without input", []string{"--metrics-addr", ":9090"}},
		{"quiet and json are exclusive", []string{"--quiet", "--json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			var cfgErr apperrors.ConfigError
			require.Error(t, err)
			assert.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %v", err)
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Run("env fills unset flags", func(t *testing.T) {
		t.Setenv(EnvPrefix+"WORKERS", "8")
		t.Setenv(EnvPrefix+"QUIET", "yes")
		t.Setenv(EnvPrefix+"TIMEOUT", "45s")

		cfg, err := parse(t)
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Workers)
		assert.True(t, cfg.Quiet)
		assert.Equal(t, 45*time.Second, cfg.Timeout)
	})

	t.Run("explicit flag wins over env", func(t *testing.T) {
		t.Setenv(EnvPrefix+"WORKERS", "8")

		cfg, err := parse(t, "--workers", "2")
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Workers)
	})

	t.Run("short alias blocks env override", func(t *testing.T) {
		t.Setenv(EnvPrefix+"INPUT", "env.txt")

		cfg, err := parse(t, "-i", "flag.txt")
		require.NoError(t, err)
		assert.Equal(t, "flag.txt", cfg.InputFile)
	})

	t.Run("invalid env value is ignored", func(t *testing.T) {
		t.Setenv(EnvPrefix+"WORKERS", "many")

		cfg, err := parse(t)
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Workers)
	})
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val        string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"TRUE", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.defaultVal); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.defaultVal, got, tt.want)
		}
	}
}
