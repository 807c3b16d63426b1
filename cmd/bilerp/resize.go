package main

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srlehn/bilerp"
	"github.com/srlehn/bilerp/internal/errors"
	"github.com/srlehn/bilerp/internal/logx"
	"github.com/srlehn/bilerp/resample"
)

func resizeFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		if len(args) != 3 {
			return errors.Errorf(`expected 3 arguments (input, scale, output), got %d`, len(args))
		}
		srcPath, dstPath := args[0], args[2]
		// the scale is checked before any file is touched
		scale, err := parseScale(args[1])
		if err != nil {
			return err
		}

		cfg, err := readConfigFile(configFlag)
		if err != nil {
			return err
		}
		if err := cfg.applyFlags(cmd); err != nil {
			return err
		}
		opts, err := cfg.resampleOptions()
		if err != nil {
			return err
		}

		logger, closeLog, err := newLogger(cfg.LogFile, cfg.LogLevel, silentFlag)
		if err != nil {
			return err
		}
		defer closeLog()
		logx.Debug(`configuration`, logx.Prov(logger), `engine`, cfg.Engine, `workers`, cfg.Workers, `rounding`, cfg.Rounding,
			`mapping`, cfg.Mapping, `jpeg_quality`, cfg.JPEGQuality)

		return bilerp.ResizeFile(srcPath, dstPath, scale, bilerp.FileConfig{
			Engine:      cfg.Engine,
			Options:     opts,
			JPEGQuality: cfg.JPEGQuality,
			Logger:      logger,
		})
	}
}

func parseScale(s string) (float64, error) {
	scale, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Kind(resample.ErrInvalidScale, `invalid relative scale value: %q`, s)
	}
	if err := resample.ValidateScale(scale); err != nil {
		return 0, err
	}
	return scale, nil
}

// newLogger logs to logFile, to stderr without one. silent discards stderr
// logging.
func newLogger(logFile, level string, silent bool) (_ *slog.Logger, closeFn func(), _ error) {
	closeFn = func() {}
	var w io.Writer = os.Stderr
	if silent {
		w = io.Discard
	}
	if len(logFile) > 0 {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closeFn, errors.WrapPrefix(err, `unable to open log file`, 0)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	logger, err := logx.NewLogger(w, level)
	if err != nil {
		closeFn()
		return nil, func() {}, err
	}
	return logger, closeFn, nil
}
