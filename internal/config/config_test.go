package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/dartscore/darts"
	"github.com/lox/dartscore/internal/game"
)

const sampleConfig = `
game "x01" {
  count_to = 301
  opt_in   = "Double"
  opt_out  = "Masters"
}

players     = ["Alice", "Bob", "Carol"]
log_level   = "debug"
history_dir = "legs"
seed        = 42
`

func TestParse(t *testing.T) {
	t.Parallel()
	cfg, err := Parse([]byte(sampleConfig), "dartscore.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, cfg.Players)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "legs", cfg.HistoryDir)
	assert.Equal(t, int64(42), cfg.Seed)

	opts, err := cfg.GameOptions()
	require.NoError(t, err)
	assert.Equal(t, game.X01, opts.Variant)
	assert.Equal(t, 301, opts.CountTo)
	assert.Equal(t, darts.OutDouble, opts.OptIn)
	assert.Equal(t, darts.OutMasters, opts.OptOut)
}

func TestParseAppliesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Parse([]byte(`game "elimination" {}`), "min.hcl")
	require.NoError(t, err)
	assert.Equal(t, Default().Players, cfg.Players)
	assert.Equal(t, "info", cfg.LogLevel)

	opts, err := cfg.GameOptions()
	require.NoError(t, err)
	assert.Equal(t, game.Elimination, opts.Variant)
	assert.Equal(t, 301, opts.CountTo)

	cfg, err = Parse([]byte(`players = ["Solo"]`), "nogame.hcl")
	require.NoError(t, err)
	opts, err = cfg.GameOptions()
	require.NoError(t, err)
	assert.Equal(t, game.X01, opts.Variant)
	assert.Equal(t, 501, opts.CountTo)
}

func TestParseVariantSettings(t *testing.T) {
	t.Parallel()
	tests := []struct {
		src   string
		check func(t *testing.T, opts game.Options)
	}{
		{`game "killer" { lives = 5 }`, func(t *testing.T, opts game.Options) {
			assert.Equal(t, 5, opts.Lives)
		}},
		{`game "shanghai" { rounds = 9 }`, func(t *testing.T, opts game.Options) {
			assert.Equal(t, 9, opts.Rounds)
		}},
		{`game "around the clock" { opt_atc = "Triple" }`, func(t *testing.T, opts game.Options) {
			assert.Equal(t, darts.Triple, opts.OptAtC)
		}},
		{`game "split score" { split_score_start = 100 }`, func(t *testing.T, opts game.Options) {
			assert.Equal(t, 100, opts.SplitScoreStart)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.src), "test.hcl")
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())
			opts, err := cfg.GameOptions()
			require.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte(`game "x01" {`), "broken.hcl")
	assert.Error(t, err)

	_, err = Parse([]byte(`unknown = 1`), "extra.hcl")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
	}{
		{"unknown variant", `game "golf" {}`},
		{"unknown rule", `game "x01" { opt_out = "Triple" }`},
		{"bad ring", `game "atc" { opt_atc = "Bull" }`},
		{"bad lives", `game "killer" { lives = -1 }`},
		{"duplicate players", `players = ["A", "A"]`},
		{"empty player", `players = ["A", ""]`},
		{"log level", `log_level = "loud"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.src), "test.hcl")
			require.NoError(t, err)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "dartscore.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "legs", cfg.HistoryDir)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()
	cfg := Default()
	err := cfg.ApplyEnv(map[string]string{
		"DARTSCORE_LOG_LEVEL":   "warn",
		"DARTSCORE_HISTORY_DIR": "/tmp/legs",
		"DARTSCORE_SEED":        "7",
		"DARTSCORE_PLAYERS":     "Ann,Ben",
	})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/legs", cfg.HistoryDir)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, []string{"Ann", "Ben"}, cfg.Players)

	cfg = Default()
	require.NoError(t, cfg.ApplyEnv(map[string]string{}))
	assert.Equal(t, Default(), cfg)

	assert.Error(t, Default().ApplyEnv(map[string]string{"DARTSCORE_SEED": "seven"}))
}
