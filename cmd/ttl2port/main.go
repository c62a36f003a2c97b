// Package main provides the ttl2port binary entry point.
// ttl2port reads the RDF description of an LV2 plugin and writes a C header
// that maps each port symbol to its index.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/c360studio/ttl2port/config"
	"github.com/c360studio/ttl2port/generator"
	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ttl2port"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

type options struct {
	configPath string
	logLevel   string
	format     string
	strict     bool
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "ttl2port <input.ttl> <output.h>",
		Short: "Generate a C port enum from an LV2 plugin description",
		Long: `ttl2port reads the Turtle description of an LV2 plugin and writes a
C header declaring one PORT_<SYMBOL> enum member per input and output
port, ordered by port index.

The header is meant to be generated once per plugin as a build step,
before the plugin's C sources are compiled.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Input RDF format (turtle, ntriples, rdfxml); default from file extension")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when two ports share an index")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func run(cmd *cobra.Command, opts options, input, output string) error {
	stderr := cmd.ErrOrStderr()

	// Bootstrap logger until the configured level is known
	logger := newLogger(stderr, firstNonEmpty(opts.logLevel, "warn"))

	// Command-line flags take precedence over config files
	flags := &config.Config{}
	if cmd.Flags().Changed("log-level") {
		flags.Log.Level = opts.logLevel
	}
	if cmd.Flags().Changed("format") {
		flags.Input.Format = opts.format
	}
	if cmd.Flags().Changed("strict") {
		flags.Generator.Strict = config.Bool(opts.strict)
	}

	cfg, err := config.NewLoader(logger).Load(opts.configPath, flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger = newLogger(stderr, cfg.Log.Level)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := generator.New(cfg, logger).Run(ctx, input, output); err != nil {
		return err
	}
	return nil
}

func newLogger(w io.Writer, levelName string) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(levelName) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
