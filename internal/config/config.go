package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	EnvDir      = "CSV_BENCH_DIR"
	EnvQuiet    = "CSV_BENCH_QUIET"
	EnvLogLevel = "CSV_BENCH_LOG_LEVEL"

	fixtureName = "test.csv"
)

// Config is what the csvbench command reads from the environment.
type Config struct {
	// Dir is the directory the fixture is written to.
	Dir string
	// Quiet is the default for the --quiet flag.
	Quiet    bool
	LogLevel logrus.Level
}

// Load reads envFile into the process environment when it exists and then
// builds a Config from it. Variables already set in the environment win over
// the file.
func Load(envFile string) (Config, error) {
	cfg := Config{Dir: ".", LogLevel: logrus.WarnLevel}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, errors.Wrapf(err, "load %s", envFile)
		}
	}

	if dir := os.Getenv(EnvDir); dir != "" {
		cfg.Dir = dir
	}

	if v := os.Getenv(EnvQuiet); v != "" {
		quiet, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "parse %s", EnvQuiet)
		}
		cfg.Quiet = quiet
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "parse %s", EnvLogLevel)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func (c Config) FixturePath() string {
	return filepath.Join(c.Dir, fixtureName)
}
