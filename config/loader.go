package config

import (
	"log/slog"
	"os"
	"path/filepath"
)

// OptionsFile is the name of the per-model option defaults file, looked up
// inside the input directory.
const OptionsFile = "csv2nq.yaml"

// Loader fills unset options from a model's option defaults file.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates an options loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Apply merges defaults from <input>/csv2nq.yaml into opts. Values already
// set (by flags) win; a missing file is not an error.
func (l *Loader) Apply(opts *Options) error {
	if opts.Input == "" {
		return nil
	}
	path := filepath.Join(opts.Input, OptionsFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		l.logger.Debug("No options file found", slog.String("path", path))
		return nil
	}
	if err != nil {
		return err
	}

	defaults, err := Parse(data)
	if err != nil {
		return err
	}
	l.logger.Debug("Loaded option defaults", slog.String("path", path))

	if opts.Log == "" {
		opts.Log = defaults.Log
	}
	if opts.Mapping == "" {
		opts.Mapping = defaults.Mapping
	}
	if !opts.Unfiltered {
		opts.Unfiltered = defaults.Unfiltered
	}
	if !opts.Expanded {
		opts.Expanded = defaults.Expanded
	}
	if opts.VersionInfo == "" {
		opts.VersionInfo = defaults.VersionInfo
	}
	if opts.GraphName == "" {
		opts.GraphName = defaults.GraphName
	}
	if opts.Label == "" {
		opts.Label = defaults.Label
	}
	return nil
}
