package main

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/srlehn/bilerp/internal/consts"
	"github.com/srlehn/bilerp/internal/errors"
	"github.com/srlehn/bilerp/resample"
	"github.com/srlehn/bilerp/resize"
)

const (
	defaultLogLevel    = `warn`
	defaultJPEGQuality = consts.DefaultJPEGQuality
)

// config holds the settings that can be read from a YAML file.
// Flags given on the command line take precedence.
type config struct {
	Engine      string `yaml:"engine"`
	Workers     int    `yaml:"workers"`
	Rounding    string `yaml:"rounding"`
	Mapping     string `yaml:"mapping"`
	JPEGQuality int    `yaml:"jpeg_quality"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
}

func defaultConfig() config {
	return config{
		Engine:      resize.DefaultEngine,
		Rounding:    resample.Truncate.String(),
		Mapping:     resample.MapCorners.String(),
		JPEGQuality: defaultJPEGQuality,
		LogLevel:    defaultLogLevel,
	}
}

func readConfig(r io.Reader) (config, error) {
	cfg := defaultConfig()
	if r == nil {
		return cfg, nil
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.WrapPrefix(err, `invalid configuration`, 0)
	}
	return cfg, cfg.validate()
}

func readConfigFile(path string) (config, error) {
	if len(path) == 0 {
		return defaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return config{}, errors.WrapPrefix(err, `unable to read configuration file`, 0)
	}
	defer f.Close()
	return readConfig(f)
}

func (c config) validate() error {
	if engine := strings.ToLower(strings.TrimSpace(c.Engine)); len(engine) > 0 && !slices.Contains(resize.Engines(), engine) {
		return errors.Errorf(`unknown engine %q, known engines: %s`, c.Engine, strings.Join(resize.Engines(), `, `))
	}
	if c.Workers < 0 {
		return errors.Errorf(`workers must not be negative, got %d`, c.Workers)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return errors.Errorf(`jpeg quality must be within 1..100, got %d`, c.JPEGQuality)
	}
	if _, err := resample.ParseRounding(c.Rounding); err != nil {
		return err
	}
	if _, err := resample.ParseMapping(c.Mapping); err != nil {
		return err
	}
	return nil
}

// applyFlags overrides the configuration with explicitly set flags.
func (c *config) applyFlags(cmd *cobra.Command) error {
	if c == nil || cmd == nil {
		return errors.NilParam(c, cmd)
	}
	fl := cmd.Flags()
	if fl.Changed(`engine`) {
		c.Engine = engineFlag
	}
	if fl.Changed(`workers`) {
		c.Workers = workersFlag
	}
	if fl.Changed(`round`) {
		c.Rounding = roundingFlag
	}
	if fl.Changed(`mapping`) {
		c.Mapping = mappingFlag
	}
	if fl.Changed(`quality`) {
		c.JPEGQuality = qualityFlag
	}
	if fl.Changed(`log-level`) {
		c.LogLevel = logLevelFlag
	}
	if fl.Changed(`log-file`) {
		c.LogFile = logFileFlag
	}
	return c.validate()
}

func (c config) resampleOptions() (resample.Options, error) {
	rd, err := resample.ParseRounding(c.Rounding)
	if err != nil {
		return nil, err
	}
	mp, err := resample.ParseMapping(c.Mapping)
	if err != nil {
		return nil, err
	}
	return resample.Options{
		resample.WithWorkers(c.Workers),
		resample.WithRounding(rd),
		resample.WithMapping(mp),
	}, nil
}
