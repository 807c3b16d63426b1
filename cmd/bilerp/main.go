package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srlehn/bilerp/internal/errors"
	"github.com/srlehn/bilerp/resize"
)

var rootCmd = &cobra.Command{
	Use:   filepath.Base(os.Args[0]) + ` <input> <relative scale> <output>`,
	Short: `resize an image with bilinear interpolation`,
	Long: `Resize an image by a relative scale factor with bilinear interpolation.

Both sides of the output are floor(side * scale) pixels. Rounding and mapping
only apply to the default engine. The output format
follows the extension of the output path (bmp, gif, jpg, png, tiff, sixel); without
an extension a JPEG is written.`,
	Example:       `  ` + filepath.Base(os.Args[0]) + ` i.jpg 1.5 o.jpg`,
	Args:          cobra.ExactArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(resizeFunc(cmd, args))
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors`)
	rootCmd.Flags().BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	rootCmd.Flags().StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file`)
	rootCmd.Flags().StringVar(&logLevelFlag, `log-level`, defaultLogLevel, `log level (debug, info, warn, error)`)
	rootCmd.Flags().StringVarP(&configFlag, `config`, `c`, ``, `YAML configuration file`)
	rootCmd.Flags().StringVarP(&engineFlag, `engine`, `e`, resize.DefaultEngine, `resizing engine (`+strings.Join(resize.Engines(), `, `)+`)`)
	rootCmd.Flags().IntVarP(&workersFlag, `workers`, `w`, 0, `concurrent row bands, 0 for one per CPU`)
	rootCmd.Flags().StringVar(&roundingFlag, `round`, `truncate`, `channel rounding (truncate, nearest)`)
	rootCmd.Flags().StringVar(&mappingFlag, `mapping`, `corners`, `coordinate mapping (corners, reference)`)
	rootCmd.Flags().IntVarP(&qualityFlag, `quality`, `q`, defaultJPEGQuality, `JPEG quality (1-100)`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, `Error: `+err.Error())
		fmt.Fprintln(os.Stderr, `Usage: `+rootCmd.UseLine())
		fmt.Fprintln(os.Stderr, `Example:`+"\n"+rootCmd.Example)
		os.Exit(1)
	}
}

var (
	debugFlag      bool
	silentFlag     bool
	logFileFlag    string
	logLevelFlag   string
	configFlag     string
	engineFlag     string
	workersFlag    int
	roundingFlag   string
	mappingFlag    string
	qualityFlag    int
	cpuProfileFlag string
	cpuProfilefunc func(profileFile string) func()
)

func run(fn func() error) {
	var exitCode int
	defer func() {
		if r := recover(); r != nil {
			exitCode = 1
			if !silentFlag {
				if stackFramer, ok := r.(interface{ ErrorStack() string }); ok {
					fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
				} else {
					fmt.Fprintln(os.Stderr, r)
					debug.PrintStack()
				}
			}
		}
		os.Exit(exitCode)
	}()
	if len(cpuProfileFlag) > 0 && cpuProfilefunc != nil {
		if stop := cpuProfilefunc(cpuProfileFlag); stop != nil {
			defer stop()
		}
	}
	var err error
	if fn == nil {
		err = errors.NilParam()
	} else {
		err = fn()
	}
	if err != nil {
		exitCode = 1
		if !silentFlag {
			if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
				fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
			} else {
				fmt.Fprintln(os.Stderr, `Error: `+err.Error())
			}
		}
	}
}
