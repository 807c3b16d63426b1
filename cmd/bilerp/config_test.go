package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/bilerp/resample"
)

func TestParseScale(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		err  bool
	}{
		{`1.5`, 1.5, false},
		{` 2 `, 2, false},
		{`0.25`, 0.25, false},
		{`abc`, 0, true},
		{``, 0, true},
		{`0`, 0, true},
		{`-1`, 0, true},
		{`NaN`, 0, true},
		{`+Inf`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseScale(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, resample.ErrInvalidScale)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	_, err := parseScale(`x`)
	assert.Contains(t, err.Error(), `invalid relative scale value: "x"`)
}

func TestReadConfig(t *testing.T) {
	cfg, err := readConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	cfg, err = readConfig(strings.NewReader(``))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	cfg, err = readConfig(strings.NewReader("engine: gift\nworkers: 4\nrounding: nearest\njpeg_quality: 75\n"))
	require.NoError(t, err)
	assert.Equal(t, `gift`, cfg.Engine)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, `nearest`, cfg.Rounding)
	assert.Equal(t, `corners`, cfg.Mapping)
	assert.Equal(t, 75, cfg.JPEGQuality)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)

	invalid := map[string]string{
		`unknown key`:      "colour: red\n",
		`negative workers`: "workers: -2\n",
		`quality`:          "jpeg_quality: 101\n",
		`rounding`:         "rounding: up\n",
		`mapping`:          "mapping: sideways\n",
		`engine`:           "engine: bicubic\n",
		`syntax`:           "workers: [\n",
	}
	for name, doc := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := readConfig(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestReadConfigFile(t *testing.T) {
	cfg, err := readConfigFile(``)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), `bilerp.yaml`)
	require.NoError(t, os.WriteFile(path, []byte("mapping: reference\nlog_level: debug\n"), 0o600))
	cfg, err = readConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, `reference`, cfg.Mapping)
	assert.Equal(t, `debug`, cfg.LogLevel)

	_, err = readConfigFile(filepath.Join(t.TempDir(), `missing.yaml`))
	assert.Error(t, err)
}

func TestApplyFlags(t *testing.T) {
	cfg := defaultConfig()
	cfg.Workers = 8
	cfg.JPEGQuality = 60

	require.NoError(t, rootCmd.ParseFlags([]string{`--round`, `nearest`, `-q`, `80`}))
	t.Cleanup(func() {
		roundingFlag = `truncate`
		qualityFlag = defaultJPEGQuality
		for _, name := range []string{`round`, `quality`} {
			rootCmd.Flags().Lookup(name).Changed = false
		}
	})
	require.NoError(t, cfg.applyFlags(rootCmd))
	assert.Equal(t, 8, cfg.Workers, `unset flags keep configured values`)
	assert.Equal(t, `nearest`, cfg.Rounding)
	assert.Equal(t, 80, cfg.JPEGQuality)

	opts, err := cfg.resampleOptions()
	require.NoError(t, err)
	r, err := resample.New(opts)
	require.NoError(t, err)
	assert.NotNil(t, r)

	var nilCfg *config
	assert.Error(t, nilCfg.applyFlags(rootCmd))
}

func TestNewLogger(t *testing.T) {
	logger, closeFn, err := newLogger(``, `info`, true)
	require.NoError(t, err)
	require.NotNil(t, logger)
	closeFn()

	path := filepath.Join(t.TempDir(), `bilerp.log`)
	logger, closeFn, err = newLogger(path, `debug`, false)
	require.NoError(t, err)
	logger.Debug(`hello`)
	closeFn()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `msg=hello`)

	_, _, err = newLogger(``, `loud`, true)
	assert.Error(t, err)
}
