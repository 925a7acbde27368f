package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	"github.com/osuushi/raycross/config"
	"github.com/osuushi/raycross/dbg"
	"github.com/osuushi/raycross/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Finds the point nearest to the start of a ray where any candidate segment
// crosses it. In the default text format, input on stdin (or the given file)
// is one segment per line as "x1,y1 x2,y2". The first line is the ray; every
// following line is a candidate. The answer is printed as "x y", or nothing
// if no candidate crosses the ray.
var (
	app = kingpin.New("raycross", "Find the nearest crossing of a ray by a stream of segments.")

	input        = app.Arg("input", "Input file. Defaults to stdin.").ExistingFile()
	configPath   = app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	tolerance    = app.Flag("tolerance", "Tolerance for parallel and coincident lines.").Float64()
	widenBounds  = app.Flag("widen-bounds", "Accept crossings up to the tolerance outside the segments.").Bool()
	skipErrors   = app.Flag("skip-errors", "Skip malformed and degenerate candidates instead of aborting.").Bool()
	inputFormat  = app.Flag("input-format", "Input format.").Enum(internal.FormatText, internal.FormatSVG, internal.FormatGeoJSON)
	outputFormat = app.Flag("output-format", "Output format.").Enum(internal.FormatText, internal.FormatGeoJSON)
	draw         = app.Flag("draw", "Save a PNG sketch of the run.").PlaceHolder("PNG").String()
	imgcat       = app.Flag("imgcat", "Print the sketch to the terminal (iTerm only).").Bool()
	verbose      = app.Flag("verbose", "Debug logging.").Short('v').Bool()
)

func main() {
	app.HelpFlag.Short('h')
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red("error:"), err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var in io.Reader = os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			return errors.Wrap(err, "could not open input")
		}
		defer f.Close()
		in = f
	}

	return internal.Run(in, os.Stdout, internal.Options{
		Solver:       cfg.Solver(),
		InputFormat:  cfg.InputFormat,
		OutputFormat: cfg.OutputFormat,
		SkipErrors:   cfg.SkipErrors(),
		Draw:         cfg.Draw,
		Imgcat:       cfg.Imgcat,
		Logger:       logger,
	})
}

// Defaults, then the config file, then flags.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}

	if *tolerance != 0 {
		cfg.Tolerance = *tolerance
	}
	if *widenBounds {
		cfg.WidenBounds = true
	}
	if *skipErrors {
		cfg.OnError = config.OnErrorSkip
	}
	if *inputFormat != "" {
		cfg.InputFormat = *inputFormat
	}
	if *outputFormat != "" {
		cfg.OutputFormat = *outputFormat
	}
	if *draw != "" {
		cfg.Draw = *draw
	}
	if *imgcat {
		cfg.Imgcat = true
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableStacktrace = true
	dbg.SetColors(isatty.IsTerminal(os.Stderr.Fd()))
	return zc.Build()
}
