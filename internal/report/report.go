// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report accumulates per-file outcomes into a run report, prints the
// completion summary, and optionally saves the report as YAML.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/Sehktel/Split-Simplify/pkg/types"
)

// FileReport records the outcome of one transformed input file.
type FileReport struct {
	Source  string   `yaml:"source"`
	Outputs []string `yaml:"outputs,omitempty"`
	Error   string   `yaml:"error,omitempty"`
}

// PairReport groups the file outcomes of one directory pair.
type PairReport struct {
	Name   string       `yaml:"name"`
	Source string       `yaml:"source"`
	Target string       `yaml:"target"`
	Files  []FileReport `yaml:"files,omitempty"`
}

// RunReport is the complete record of one run: what was configured, what was
// produced, and the final counters. It exists only for the duration of the
// run unless saved with WriteFile.
type RunReport struct {
	Operation  types.Operation `yaml:"operation"`
	ConfigFile string          `yaml:"config_file"`
	Settings   types.Settings  `yaml:"settings"`
	Pairs      []*PairReport   `yaml:"pairs,omitempty"`
	Warnings   []string        `yaml:"warnings,omitempty"`
	Stats      types.RunStats  `yaml:"stats"`
	Timestamp  time.Time       `yaml:"timestamp"`
}

// New starts an empty report for op.
func New(op types.Operation, configFile string, settings types.Settings) *RunReport {
	return &RunReport{
		Operation:  op,
		ConfigFile: configFile,
		Settings:   settings,
		Timestamp:  time.Now(),
	}
}

// StartPair opens a report section for a directory pair and returns it for
// appending file outcomes.
func (r *RunReport) StartPair(pair types.DirectoryPair) *PairReport {
	p := &PairReport{
		Name:   pair.Name,
		Source: pair.Source,
		Target: pair.Target,
	}
	r.Pairs = append(r.Pairs, p)
	return p
}

// AddFile records one file outcome and updates the run counters.
func (r *RunReport) AddFile(p *PairReport, source string, outputs []string, err error) {
	fr := FileReport{Source: source, Outputs: outputs}
	r.Stats.FilesRead++
	r.Stats.FilesWritten += len(outputs)
	if err != nil {
		fr.Error = err.Error()
		r.Stats.Errors++
	}
	p.Files = append(p.Files, fr)
}

// AddWarning records a non-fatal condition.
func (r *RunReport) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
	r.Stats.Warnings++
}

// PrintSummary writes the human-readable completion report. It always runs
// at the end of a run, whatever the per-file outcomes were.
func (r *RunReport) PrintSummary(w io.Writer) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "%s complete\n", titleFor(r.Operation))
	fmt.Fprintf(w, "  Directories processed: %d\n", r.Stats.DirectoriesProcessed)
	fmt.Fprintf(w, "  Files read:            %d\n", r.Stats.FilesRead)
	fmt.Fprintf(w, "  Files written:         %d\n", r.Stats.FilesWritten)
	fmt.Fprintf(w, "  Errors:                %d\n", r.Stats.Errors)
	fmt.Fprintf(w, "  Warnings:              %d\n", r.Stats.Warnings)
	fmt.Fprintf(w, "%s\n", rule)
}

func titleFor(op types.Operation) string {
	switch op {
	case types.OpSplit:
		return "Split"
	case types.OpSimplify:
		return "Simplify"
	default:
		return string(op)
	}
}

// WriteFile saves the report as YAML.
func (r *RunReport) WriteFile(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling run report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run report %s: %w", path, err)
	}
	return nil
}
