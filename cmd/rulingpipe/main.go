// Package main provides the rulingpipe binary entry point.
// Rulingpipe converts Rechtspraak ruling XML documents into JSON records that
// combine JSON-LD metadata with the text of the considerations and decision.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/c360studio/rulingpipe/config"
	"github.com/c360studio/rulingpipe/export"
	"github.com/c360studio/rulingpipe/pipeline"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "rulingpipe"
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

	if err := rootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the persistent flags shared by all commands.
type options struct {
	configPath string
	logLevel   string
	logOutput  io.Writer
}

func rootCmd(logOutput io.Writer) *cobra.Command {
	opts := &options{logOutput: logOutput}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Convert Rechtspraak rulings to JSON",
		Long: `Rulingpipe converts a directory of Rechtspraak ruling XML documents into
one JSON artifact per ruling.

Each artifact holds:
- JSON-LD metadata decoded from the RDF header
- The paragraphs of the OVERWEGINGEN and BESLISSING sections

Documents whose metadata cannot be decoded are skipped; documents whose
body cannot be read are written with an empty section list.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		convertCmd(opts),
		watchCmd(opts),
		inspectCmd(opts),
		configCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)
	return cmd
}

// newLogger returns a text logger on w at the named level.
func newLogger(w io.Writer, logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// setup loads the layered configuration, applies the log level flag and
// installs the default logger.
func (o *options) setup() (*config.Config, *slog.Logger, error) {
	bootstrap := newLogger(o.logOutput, o.logLevel)

	cfg, err := config.NewLoader(bootstrap).Load(o.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	logger := newLogger(o.logOutput, cfg.Log.Level)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func convertCmd(opts *options) *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert every eligible document once",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup()
			if err != nil {
				return err
			}
			applyDirs(cfg, input, output)

			app, err := NewApp(cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			summary, err := app.Convert(ctx)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input directory (overrides input.dir)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (overrides output.dir)")
	return cmd
}

func watchCmd(opts *options) *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Convert all documents, then convert changes as they happen",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup()
			if err != nil {
				return err
			}
			applyDirs(cfg, input, output)

			app, err := NewApp(cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			summary, err := app.Watch(ctx)
			if err != nil {
				return err
			}
			logger.Info("Received shutdown signal")
			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input directory (overrides input.dir)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (overrides output.dir)")
	return cmd
}

func applyDirs(cfg *config.Config, input, output string) {
	if input != "" {
		cfg.Input.Dir = input
	}
	if output != "" {
		cfg.Output.Dir = output
	}
}

func printSummary(w io.Writer, s *pipeline.Summary) {
	fmt.Fprintf(w, "Run %s: %d discovered, %d converted, %d degraded, %d skipped, %d write failures (%s)\n",
		s.RunID, s.Discovered, s.Converted, s.Degraded, s.Skipped, s.WriteFailed, s.Duration.Round(time.Millisecond))
	for _, warn := range s.Warnings {
		fmt.Fprintf(w, "  %-14s %s (%s): %s\n", warn.Kind, warn.Document, warn.Path, warn.Message)
	}
	if s.Interrupted {
		fmt.Fprintln(w, "Run interrupted before all documents were processed")
	}
}

func inspectCmd(opts *options) *cobra.Command {
	var format, outDir string

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Convert one document and print the result",
		Long: `Inspect converts a single document and prints it, or writes it to
<out>/<document id><format extension> when --out is given.

Formats:
- json: the full output record
- jsonld, ntriples, turtle: the metadata as RDF`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return inspect(cmd.OutOrStdout(), newConverter(cfg), logger, args[0], format, outDir)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, jsonld, ntriples, turtle)")
	cmd.Flags().StringVar(&outDir, "out", "", "Write the result into this directory instead of stdout")
	return cmd
}

func inspect(w io.Writer, conv *pipeline.Converter, logger *slog.Logger, path, format, outDir string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	doc := pipeline.NewRawDocument(filepath.Base(path), content)
	outcome := conv.Convert(doc)
	if outcome.Status == pipeline.StatusSkipped {
		return fmt.Errorf("convert %s: %w", path, outcome.Err)
	}
	if outcome.Status == pipeline.StatusDegraded {
		logger.Warn("Partial extract failed", "document", doc.ID, "error", outcome.Err)
	}

	ext := ".json"
	render := func(out io.Writer) error {
		data, err := pipeline.Marshal(outcome.Record)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	if !strings.EqualFold(format, "json") {
		rdfFormat, err := export.ParseFormat(format)
		if err != nil {
			return err
		}
		exporter := export.NewExporter()
		exporter.AddRecord(outcome.Record.Metadata)
		ext = rdfFormat.Extension()
		render = func(out io.Writer) error {
			return exporter.Write(out, rdfFormat)
		}
	}

	if outDir == "" {
		return render(w)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	target := filepath.Join(outDir, doc.ID+ext)
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", target)
	return nil
}

func configCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.setup()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init [DIR]",
		Short: "Write a default " + config.ProjectConfigFile + " if none exists",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			loader := config.NewLoader(newLogger(opts.logOutput, opts.logLevel))
			path, created, err := loader.EnsureProjectConfig(dir)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
			}
			return nil
		},
	})
	return cmd
}

// run executes the root command with args; it exists for tests.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := rootCmd(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}
