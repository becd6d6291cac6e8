// Package config loads an optional project-level YAML file whose
// values are merged underneath whatever the CLI flags in cmd/es6to5
// already set — a down-leveling pass is commonly invoked from build
// tooling where most runs want the same options, checked into the repo
// rather than typed by a human every time.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the shape of an es6to5 project config file.
type File struct {
	LanguageOut string   `yaml:"languageOut"`
	Paths       []string `yaml:"paths"`
	DryRun      bool     `yaml:"dryRun"`
	Report      string   `yaml:"report"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return f, nil
}

// MergeUnderFlags fills any zero-valued field of into from f, leaving
// values already set by the CLI flags untouched — the config file is a
// fallback, never an override, matching spec.md's host-decides
// philosophy about option queries (languageOut, syntax) at the call
// boundary.
func MergeUnderFlags(into *File, f File) {
	if into.LanguageOut == "" {
		into.LanguageOut = f.LanguageOut
	}
	if len(into.Paths) == 0 {
		into.Paths = f.Paths
	}
	if !into.DryRun {
		into.DryRun = f.DryRun
	}
	if into.Report == "" {
		into.Report = f.Report
	}
}
