package bench

import (
	"context"
	"fmt"
	"os"
	"time"

	"CSV_Bench_in_Go/internal/fixture"
	"CSV_Bench_in_Go/internal/read"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Func is the shape a benchmark suite uses to drive a benchmark: it runs once
// and returns the measured value in seconds.
type Func func(quiet bool) (float64, error)

var _ Func = RunBench

// Result holds the outcome of one run.
type Result struct {
	// Max is the slowest of the timed parses.
	Max time.Duration
	// Trials is the number of timed parses Max was taken over.
	Trials int
	// Rows is the number of records each parse produced, header included.
	Rows int
}

func (r Result) Seconds() float64 {
	return r.Max.Seconds()
}

func (r Result) Nanoseconds() int64 {
	return r.Max.Nanoseconds()
}

// RunBench runs the default benchmark against DefaultPath and returns the
// maximum parse time in seconds.
func RunBench(quiet bool) (float64, error) {
	res, err := Run(context.Background(), &Options{Quiet: quiet})
	if err != nil {
		return 0, err
	}

	return res.Seconds(), nil
}

// Run writes the fixture, parses it Warmups times untimed and Trials times
// timed, reports the slowest timed parse and removes the fixture. If the run
// fails before the removal step the fixture is left on disk.
func Run(ctx context.Context, opts *Options) (Result, error) {
	o, err := opts.normalize()
	if err != nil {
		return Result{}, err
	}
	log := o.Log.WithField("path", o.Path)

	if err := fixture.Generate(o.Path, o.Rows); err != nil {
		return Result{}, err
	}

	res, err := measure(ctx, log, &o)
	if err != nil {
		return Result{}, err
	}

	if !o.Quiet {
		if _, err := fmt.Fprintln(o.Out, reportLabel, res.Nanoseconds()); err != nil {
			return Result{}, errors.Wrap(err, "write report")
		}
	}

	if err := os.Remove(o.Path); err != nil {
		return Result{}, errors.Wrapf(err, "remove fixture %s", o.Path)
	}

	log.WithFields(logrus.Fields{
		"trials": res.Trials,
		"rows":   res.Rows,
		"max":    res.Max,
	}).Info("csv read benchmark finished")

	return res, nil
}

func measure(ctx context.Context, log logrus.FieldLogger, o *Options) (res Result, err error) {
	file, err := os.Open(o.Path)
	if err != nil {
		return res, errors.Wrapf(err, "open fixture %s", o.Path)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close fixture %s", o.Path)
		}
	}()

	for i := 0; i < o.Warmups; i++ {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrap(err, "warmup")
		}
		if _, err := read.Once(file); err != nil {
			return res, err
		}
	}

	res.Trials = o.Trials
	for i := 0; i < o.Trials; i++ {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrapf(err, "trial %d", i)
		}

		start := time.Now()
		rows, err := read.Once(file)
		elapsed := time.Since(start)
		if err != nil {
			return res, err
		}

		res.Rows = rows
		if elapsed > res.Max {
			res.Max = elapsed
		}
		log.WithFields(logrus.Fields{"trial": i, "elapsed": elapsed}).Debug("csv read")
	}

	return res, nil
}
