// Package config provides run option loading and management for csv2nq.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Options holds every knob of one conversion run. Command line flags are
// the primary source; an optional csv2nq.yaml inside the input directory
// may pre-set defaults for values the flags leave unset.
type Options struct {
	// Input is the directory containing the source CSV tables.
	Input string `yaml:"input"`
	// Output is the destination N-Quads file.
	Output string `yaml:"output"`
	// Log is the optional construction-sequence trace file.
	Log string `yaml:"log"`
	// Mapping is the optional icon-mapping JSON file.
	Mapping string `yaml:"mapping"`
	// Unfiltered forces visibility flags true and construction state
	// flags false, including population min/max visibility.
	Unfiltered bool `yaml:"unfiltered"`
	// Expanded enables population triplet expansion.
	Expanded bool `yaml:"expanded"`
	// VersionInfo overrides the ontology version annotation; it defaults
	// to the invocation timestamp.
	VersionInfo string `yaml:"versionInfo"`
	// GraphName overrides the last path segment of the domain graph URI
	// found in DomainModel.csv.
	GraphName string `yaml:"graphName"`
	// Label overrides the ontology label found in DomainModel.csv.
	Label string `yaml:"label"`
}

// Default returns Options with nothing set; the conversion itself supplies
// the timestamp version and the table-derived graph and label.
func Default() *Options {
	return &Options{}
}

// Validate checks that the options name the required input and output.
func (o *Options) Validate() error {
	if o.Input == "" {
		return fmt.Errorf("input directory is required")
	}
	if o.Output == "" {
		return fmt.Errorf("output filename is required")
	}
	return nil
}

// Parse decodes YAML option defaults.
func Parse(data []byte) (*Options, error) {
	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse options file: %w", err)
	}
	return opts, nil
}
