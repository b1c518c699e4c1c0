// Package cmd implements the lvmdump command line.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shapestone/shape-lvm/internal/config"
	"github.com/shapestone/shape-lvm/pkg/lvm"
)

var (
	cfgFile            string
	format             string
	allowUnknownFields bool
	verbose            bool
)

var rootCmd = &cobra.Command{
	Use:   "lvmdump FILE...",
	Short: "Decode LabVIEW Measurement (.lvm) files",
	Long: `lvmdump decodes LabVIEW Measurement files and prints their contents.

Formats:
  summary  - one block per file with header fields and segment sizes
  json     - the decoded file as JSON
  yaml     - the decoded file as YAML`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (TOML)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "output format: summary, json or yaml")
	rootCmd.Flags().BoolVar(&allowUnknownFields, "allow-unknown-fields", false, "skip unknown header fields")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log decoding progress")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	opts := lvm.DefaultOptions()
	opts.AllowUnknownFields = cfg.AllowUnknownFields
	opts.Logger = logger

	out := cmd.OutOrStdout()
	for _, path := range args {
		logger.Debug("decoding", "file", path)
		f, err := lvm.DecodeFile(path, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := write(out, cfg.Format, path, f); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// loadConfig merges the config file, if any, with the command line flags.
// Flags that were set explicitly win.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("allow-unknown-fields") {
		cfg.AllowUnknownFields = allowUnknownFields
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

func write(w io.Writer, format, path string, f *lvm.File) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeSummary(w, path, f)
	}
}

func writeSummary(w io.Writer, path string, f *lvm.File) error {
	h := f.Header
	if _, err := fmt.Fprintf(w, "%s\n  date: %s %s\n  writer version: %s\n  x columns: %s\n  segments: %d\n",
		path, h.Date, h.Time, h.WriterVersion, h.XColumns, len(f.Segments)); err != nil {
		return err
	}
	for i, seg := range f.Segments {
		if _, err := fmt.Fprintf(w, "  segment %d (line %d): %d channels, %d rows, headings %q\n",
			i+1, seg.Line, seg.Header.Channels, len(seg.Rows), seg.Headings); err != nil {
			return err
		}
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}
