// Package main provides the csv2nq binary entry point.
// Csv2nq converts a Spyderisk domain model, maintained as a set of CSV
// tables, into the N-Quads graph consumed by the system modeller.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Spyderisk/domain-csv2nq/config"
	"github.com/Spyderisk/domain-csv2nq/convert"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "csv2nq"
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

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := config.Default()
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Convert a Spyderisk domain model from CSV to N-Quads",
		Long: `Csv2nq converts a Spyderisk domain model, maintained as a set of CSV
tables, into the N-Quads graph consumed by the system modeller.

It reads every table from the input directory, validates cross references
between them, optionally expands population triplets, and streams the
resulting quads to the output file in table order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, logLevel)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Directory containing CSV files for input")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output NQ filename")
	cmd.Flags().StringVarP(&opts.Log, "log", "l", "", "Logfile for construction sequence diagnostics")
	cmd.Flags().StringVarP(&opts.Mapping, "mapping", "m", "", "Output JSON icon-mapping filename")
	cmd.Flags().BoolVarP(&opts.Unfiltered, "unfiltered", "u", false,
		"Set Misbehaviour and TWA visibility flags to true, construction state flags to false")
	cmd.Flags().BoolVarP(&opts.Expanded, "expanded", "e", false,
		"Add population model support by expanding relevant structures")
	cmd.Flags().StringVarP(&opts.VersionInfo, "version-info", "v", "",
		"Set the versionInfo string (defaults to timestamp); '-unfiltered' is appended if -u is used")
	cmd.Flags().StringVarP(&opts.GraphName, "name", "n", "",
		"Set the domainGraph string (defaults to what is found in DomainModel.csv)")
	cmd.Flags().StringVarP(&opts.Label, "label", "b", "",
		"Set the rdfs:label property (defaults to what is found in DomainModel.csv)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func run(opts *config.Options, logLevel string) error {
	// Configure logging
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Merge option defaults shipped with the model; flags win
	if err := config.NewLoader(logger).Apply(opts); err != nil {
		return fmt.Errorf("load option defaults: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	if opts.VersionInfo == "" {
		opts.VersionInfo = time.Now().Format("2006-01-02T15:04:05")
	}

	if opts.Unfiltered {
		logger.Info("Misbehaviour and TWA visibility flags set to true, construction state flags to false")
	} else {
		logger.Info("Misbehaviour and TWA visibility flags use domain model specifications")
	}
	if opts.Expanded {
		logger.Info("Expanding population triplets")
	} else {
		logger.Info("Not expanding population triplets")
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()

	var trace *os.File
	if opts.Log != "" {
		if trace, err = os.Create(opts.Log); err != nil {
			return fmt.Errorf("create log file: %w", err)
		}
		defer trace.Close()
	}

	converter := convert.New(opts, logger)
	if trace != nil {
		err = converter.Run(out, trace)
	} else {
		err = converter.Run(out, nil)
	}
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	if opts.Mapping != "" {
		mapping, err := os.Create(opts.Mapping)
		if err != nil {
			return fmt.Errorf("create mapping file: %w", err)
		}
		defer mapping.Close()
		if err := converter.WriteMapping(mapping); err != nil {
			return err
		}
		if err := mapping.Close(); err != nil {
			return fmt.Errorf("close mapping file: %w", err)
		}
	}

	logger.Info("Conversion complete",
		slog.String("output", opts.Output),
		slog.String("graph", converter.Graph()))
	return nil
}
