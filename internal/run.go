package internal

import (
	"io"

	"github.com/osuushi/raycross/dbg"
	"github.com/osuushi/raycross/geometry"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrMissingRay = errors.New("no ray in input")

type Options struct {
	Solver       geometry.Solver
	InputFormat  string
	OutputFormat string
	// Skip malformed and degenerate candidates instead of aborting. A bad ray
	// always aborts.
	SkipErrors bool
	// Save a PNG sketch of the run here, if set
	Draw   string
	Imgcat bool
	Logger *zap.Logger
}

// Run reads the ray and then every candidate from in, and writes the hit
// nearest to the ray's start to out.
func Run(in io.Reader, out io.Writer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	source, err := OpenSource(in, opts.InputFormat)
	if err != nil {
		return err
	}

	ray, err := source.Next()
	if errors.Is(err, io.EOF) {
		return ErrMissingRay
	}
	if err != nil {
		return errors.Wrap(err, "could not read ray")
	}
	if _, err := geometry.MakeLine(ray); err != nil {
		return errors.Wrap(err, "invalid ray")
	}
	logger.Debug(dbg.DescribeRay(ray))

	reducer := geometry.NewReducer(ray, opts.Solver)
	var sketch *Sketch
	if opts.Draw != "" {
		sketch = NewSketch(ray)
	}

	skipped := 0
	for {
		candidate, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if opts.SkipErrors && errors.Is(err, ErrMalformedInput) {
				logger.Warn("skipping candidate", zap.Error(err))
				skipped++
				continue
			}
			return err
		}

		hit, ok, err := reducer.Add(candidate)
		if err != nil {
			err = errors.Wrapf(err, "candidate %d", reducer.Count())
			if opts.SkipErrors && errors.Is(err, geometry.ErrDegenerateSegment) {
				logger.Warn("skipping candidate", zap.Error(err))
				skipped++
				continue
			}
			return err
		}
		if logger.Core().Enabled(zap.DebugLevel) {
			logger.Debug(dbg.Describe(dbg.Name(reducer.Count()), candidate, hit, ok))
		}
		if sketch != nil {
			sketch.Add(candidate, hit, ok)
		}
	}

	best, ok := reducer.Best()
	logger.Info("done",
		zap.Int("candidates", reducer.Count()),
		zap.Int("hits", reducer.Hits()),
		zap.Int("skipped", skipped),
		zap.Bool("found", ok),
	)

	if sketch != nil {
		sketch.SetBest(best, ok)
		if err := sketch.SavePNG(opts.Draw); err != nil {
			return err
		}
		if opts.Imgcat {
			if err := CatPNG(opts.Draw); err != nil {
				logger.Warn("could not print sketch", zap.Error(err))
			}
		}
	}

	return WriteResult(out, opts.OutputFormat, best, ok)
}
