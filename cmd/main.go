package main

import (
	"os"
	"time"

	"CSV_Bench_in_Go/internal/bench"
	"CSV_Bench_in_Go/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd(cfg config.Config) *cobra.Command {
	quiet := cfg.Quiet

	cmd := &cobra.Command{
		Use:           "csvbench",
		Short:         "Time repeated encoding/csv parses of a small generated file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := bench.Run(cmd.Context(), &bench.Options{
				Path:  cfg.FixturePath(),
				Quiet: quiet,
				Out:   cmd.OutOrStdout(),
			})
			return err
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", quiet, "do not print the runtime report")

	return cmd
}

func main() {
	start := time.Now()
	logrus.SetOutput(os.Stderr)

	cfg, err := config.Load(".env")
	if err != nil {
		logrus.Fatalf("Could not set up environment variables: %v", err)
	}
	logrus.SetLevel(cfg.LogLevel)

	if err := newRootCmd(cfg).Execute(); err != nil {
		logrus.Fatalf("Benchmark failed: %v", err)
	}

	logrus.Infof("Execution time: %s", time.Since(start))
}
