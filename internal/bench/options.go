package bench

import (
	"io"
	"os"

	"CSV_Bench_in_Go/internal/fixture"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultPath is the fixture location used when Options.Path is empty.
	DefaultPath    = "test.csv"
	DefaultWarmups = 10
	DefaultTrials  = 10
	reportLabel    = "Python runtime (ns): \t"
	fixturePattern = "csvbench-*.csv"
)

// ErrInvalidOptions is returned for negative row, warmup or trial counts.
var ErrInvalidOptions = errors.New("invalid bench options")

// Options controls a single benchmark run. The zero value runs the default
// benchmark against DefaultPath.
type Options struct {
	// Path of the fixture file. It is created at the start of the run and
	// removed at the end.
	Path string
	// Rows is the number of data rows below the header.
	Rows int
	// Warmups is the number of untimed parses before measuring.
	Warmups int
	// Trials is the number of timed parses.
	Trials int
	// Quiet suppresses the report line.
	Quiet bool
	// Out receives the report line (default os.Stdout).
	Out io.Writer
	// Log receives debug and summary logging (default logrus standard logger).
	Log logrus.FieldLogger
}

func (o *Options) normalize() (Options, error) {
	var out Options
	if o != nil {
		out = *o
	}

	if out.Rows < 0 || out.Warmups < 0 || out.Trials < 0 {
		return out, errors.Wrapf(ErrInvalidOptions, "rows=%d warmups=%d trials=%d", out.Rows, out.Warmups, out.Trials)
	}

	if out.Path == "" {
		out.Path = DefaultPath
	}
	if out.Rows == 0 {
		out.Rows = fixture.DefaultRows
	}
	if out.Warmups == 0 {
		out.Warmups = DefaultWarmups
	}
	if out.Trials == 0 {
		out.Trials = DefaultTrials
	}
	if out.Out == nil {
		out.Out = os.Stdout
	}
	if out.Log == nil {
		out.Log = logrus.StandardLogger()
	}

	return out, nil
}

// TempPath reserves a unique fixture path inside dir. Runs using distinct
// paths from TempPath do not race on the fixture file.
func TempPath(dir string) (string, error) {
	file, err := os.CreateTemp(dir, fixturePattern)
	if err != nil {
		return "", errors.Wrap(err, "reserve fixture path")
	}
	path := file.Name()
	if err := file.Close(); err != nil {
		return "", errors.Wrapf(err, "close %s", path)
	}

	return path, nil
}
