package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hailam/bigtext/internal/adapters/factory"
	"github.com/hailam/bigtext/internal/adapters/progress"
	"github.com/hailam/bigtext/internal/adapters/txt"
	adapterutils "github.com/hailam/bigtext/internal/adapters/utils"
	"github.com/hailam/bigtext/internal/application"
	"github.com/hailam/bigtext/internal/config"
	"github.com/hailam/bigtext/internal/utils"
)

const usageLine = "Usage: bigtext [size(MB)] [filename]"

// exitCodeError carries the process exit status for an error whose message
// has already been shown to the user.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(normalizeArgs(rootCmd.Flags(), args))
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	var ec *exitCodeError
	if errors.As(err, &ec) {
		return ec.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := config.New()
	var configPath string

	var rootCmd = &cobra.Command{
		Use:   "bigtext [size_mb] [filename]",
		Short: "Generates a large code-like text file for editor stress tests.",
		Long: `bigtext writes a text file of at least the requested size, filled with
random lines: C++-style code snippets, runs of identifier-like words,
// comments and blank lines. size_mb is a whole number of megabytes; use
--target for sizes with a unit suffix (K, M, G). The default is a 100 MB
file named large_test_file.txt.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := config.ReadFile(v, configPath); err != nil {
					return err
				}
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			// Positional arguments win over every other source.
			if len(args) > 0 {
				cfg.Size = args[0]
				cfg.Target = ""
			}
			if len(args) > 1 {
				cfg.Output = args[1]
			}
			return generate(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to a config file (yaml, toml or json)")
	flags.String(config.KeyTarget, "", "Target size with an optional unit suffix, e.g. 512K or 2G (overrides the size setting)")
	flags.Uint64(config.KeySeed, 0, "Seed for reproducible output (random when unset)")
	flags.String(config.KeyProgress, string(config.DefaultProgress), "Progress display: log, spinner, bar or none")
	flags.Int64(config.KeyProgressEvery, config.DefaultProgressEvery, "Lines between progress reports (0 disables them)")
	flags.String(config.KeyMetricsFile, "", "Write Prometheus textfile metrics to this path when done")
	flags.BoolP(config.KeyQuiet, "q", false, "Only print warnings and errors")
	if err := config.BindFlags(v, flags); err != nil {
		panic(err)
	}

	return rootCmd
}

func generate(stdout, stderr io.Writer, cfg config.Config) error {
	// --- Composition Root: Initialize Adapters and Core Logic ---
	logger := newLogger(stdout, cfg.Quiet)

	reporter, err := factory.NewStaticReporterFactory(stdout, logger).For(cfg.Progress)
	if err != nil {
		return err
	}
	if cfg.MetricsFile != "" {
		reporter = progress.Multi{reporter, progress.NewMetricsReporter(cfg.MetricsFile)}
	}

	opts := []txt.Option{txt.WithProgressInterval(cfg.ProgressEvery)}
	if cfg.Seeded {
		opts = append(opts, txt.WithSeed(cfg.Seed))
	}
	sizeSpec, parser := cfg.Size, adapterutils.NewMegabyteSizeParser()
	if cfg.Target != "" {
		sizeSpec, parser = cfg.Target, adapterutils.NewUtilSizeParser(utils.MiB)
	}
	fileService := application.NewFileService(txt.New(opts...), parser, reporter)
	// --- End Composition Root ---

	summary, err := fileService.CreateFile(cfg.Output, sizeSpec)
	if errors.Is(err, utils.ErrInvalidSize) {
		fmt.Fprintln(stderr, usageLine)
		return &exitCodeError{code: 1, err: err}
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error generating file: %v\n", err)
		return &exitCodeError{code: 1, err: err}
	}

	if !cfg.Quiet {
		printSummary(stdout, summary)
	}
	return nil
}

func newLogger(out io.Writer, quiet bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if quiet {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}
