// Package main provides the CLI entry point for tablecalc.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/tablecalc-go/internal/config"
	"github.com/ukaji3/tablecalc-go/pkg/tablecalc"
	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/models"
	"github.com/ukaji3/tablecalc-go/pkg/tablecalc/output"
)

func main() {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stdout, "Error - %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "tablecalc [input]",
		Short: "Evaluate cell formulas of a comma-separated table",
		Long: `tablecalc reads a table of integers and formulas such as =A1+B2,
resolves every formula in dependency order, and prints the resolved table.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg, args[0], stdout, stderr)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file path (yaml, toml, or json)")
	rootCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().String("format", config.FormatCSV, "Output format: csv, json, xlsx")
	rootCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().String("sheet", "", "Worksheet for xlsx input and output")
	rootCmd.Flags().String("cycle-check", string(tablecalc.CycleCheckRevisit), "Circular reference check: revisit, path")
	rootCmd.Flags().Bool("strict", false, "Reject characters after the second operand of a formula")
	rootCmd.Flags().String("log-level", "warn", "Log level: debug, info, warn, error")

	return rootCmd
}

func run(cfg *config.Config, inputPath string, stdout, stderr io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := cfg.Options()
	opts.Logger = logger

	table, err := tablecalc.Calculate(inputPath, opts)
	if err != nil {
		return err
	}

	data, err := render(table, cfg)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("wrote resolved table", "path", cfg.Output, "format", cfg.Format)
		return nil
	}

	_, err = stdout.Write(data)
	return err
}

func render(table *models.Table, cfg *config.Config) ([]byte, error) {
	var buf bytes.Buffer

	switch cfg.Format {
	case config.FormatJSON:
		data, err := output.ToJSON(table, cfg.Pretty)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	case config.FormatXLSX:
		if err := output.ToXLSX(&buf, table, cfg.Sheet); err != nil {
			return nil, err
		}
	default:
		if err := output.ToCSV(&buf, table); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}
