// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared record types passed between the
// configuration loader, the directory pipeline, and the reporters.
package types

// Operation selects which transformation a directory pair is configured for.
type Operation string

const (
	// OpSplit partitions large Markdown files into per-section files.
	OpSplit Operation = "split"
	// OpSimplify rewrites section files into a reduced form for the
	// downstream block editor.
	OpSimplify Operation = "simplify"
)

// DirectoryPair is a named association between a source and a target
// directory for one operation. Pairs are built once at configuration load
// time and are immutable afterwards.
type DirectoryPair struct {
	// Name is the configuration prefix the pair was derived from
	// (e.g. "course" for course_source/course_target).
	Name string `yaml:"name"`

	// Source is the directory holding the input files.
	Source string `yaml:"source"`

	// Target is the directory the transformed files are written to.
	// Created, with missing ancestors, before processing.
	Target string `yaml:"target"`

	// Op is the operation the pair belongs to.
	Op Operation `yaml:"operation"`
}

// Settings holds the global options from the [settings] section.
type Settings struct {
	// Encoding is the character encoding used to read source files and
	// write output files (default "utf-8").
	Encoding string `yaml:"encoding"`

	// FileExtension selects input files by suffix (default ".md").
	// The match is case-sensitive.
	FileExtension string `yaml:"file_extension"`

	// FilePattern, when set, overrides FileExtension with a glob pattern
	// matched against file names (e.g. "lesson_*.md").
	FilePattern string `yaml:"file_pattern,omitempty"`
}

// Pattern returns the glob used to select input files: FilePattern when
// configured, otherwise "*" plus the extension suffix.
func (s Settings) Pattern() string {
	if s.FilePattern != "" {
		return s.FilePattern
	}
	return "*" + s.FileExtension
}

// Config is the full parsed configuration for one run.
type Config struct {
	// Path is the configuration file the settings were read from.
	Path string `yaml:"path"`

	// Pairs lists every directory pair found in [directories], for both
	// operations, in the order the keys appear sorted lexicographically.
	Pairs []DirectoryPair `yaml:"pairs"`

	// Settings holds the global [settings] values with defaults applied.
	Settings Settings `yaml:"settings"`
}

// PairsFor returns the directory pairs configured for op, preserving order.
func (c *Config) PairsFor(op Operation) []DirectoryPair {
	var out []DirectoryPair
	for _, p := range c.Pairs {
		if p.Op == op {
			out = append(out, p)
		}
	}
	return out
}
