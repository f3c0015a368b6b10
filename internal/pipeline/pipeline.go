// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives one run: load configuration, resolve directory
// pairs, enumerate files, transform each one, and assemble the run report.
// Processing is strictly sequential; pairs run in configuration order and
// files in lexicographic order, so repeated runs produce identical output.
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/Sehktel/Split-Simplify/internal/config"
	"github.com/Sehktel/Split-Simplify/internal/discover"
	"github.com/Sehktel/Split-Simplify/internal/report"
	"github.com/Sehktel/Split-Simplify/internal/simplify"
	"github.com/Sehktel/Split-Simplify/internal/split"
	"github.com/Sehktel/Split-Simplify/internal/textenc"
	"github.com/Sehktel/Split-Simplify/pkg/types"
)

// Transformer converts one input file into one or more output files under
// the task's target directory, returning the paths written. Implementations
// must be deterministic: the same input bytes always produce the same
// output bytes.
type Transformer interface {
	// Kind names the operation the transformer implements.
	Kind() types.Operation

	// Transform processes a single file task.
	Transform(task types.FileTask) ([]string, error)
}

// Options configures a run.
type Options struct {
	// ConfigPath locates the ss.ini configuration file.
	ConfigPath string

	// Out receives per-file status lines. Defaults to io.Discard when nil.
	Out io.Writer

	// Logger receives warnings and per-file diagnostics.
	Logger zerolog.Logger

	// Progress draws a progress bar per directory pair instead of
	// per-file status lines.
	Progress bool

	// Transformer overrides the operation's default transformer; used by
	// tests.
	Transformer Transformer
}

// Runner executes one run for a single operation.
type Runner struct {
	op    types.Operation
	opts  Options
	state types.RunState
}

// NewRunner returns a Runner in the start state.
func NewRunner(op types.Operation, opts Options) *Runner {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Runner{op: op, opts: opts, state: types.RunStart}
}

// State returns the runner's current phase.
func (r *Runner) State() types.RunState {
	return r.state
}

// Run executes the pipeline. A non-nil error is configuration-level and
// fatal; per-file and per-directory problems are recorded in the report
// instead. The report is non-nil whenever processing started, so callers
// can always print a summary on success.
func (r *Runner) Run() (*report.RunReport, error) {
	cfg, cfgWarnings, err := config.Load(r.opts.ConfigPath)
	if err != nil {
		return r.fail(err)
	}
	r.state = types.RunConfigLoaded

	codec, err := textenc.Lookup(cfg.Settings.Encoding)
	if err != nil {
		return r.fail(fmt.Errorf("invalid [settings] in %s: %w", cfg.Path, err))
	}

	transformer := r.opts.Transformer
	if transformer == nil {
		switch r.op {
		case types.OpSimplify:
			transformer = simplify.New(codec)
		default:
			transformer = split.New(codec)
		}
	}

	rep := report.New(r.op, cfg.Path, cfg.Settings)
	for _, w := range cfgWarnings {
		r.warn(rep, w)
	}

	pairs := cfg.PairsFor(r.op)
	if len(pairs) == 0 {
		r.warn(rep, fmt.Sprintf("no %s directory pairs configured in %s", r.op, cfg.Path))
		r.state = types.RunDone
		return rep, nil
	}

	resolved, warnings := discover.Resolve(pairs)
	for _, w := range warnings {
		r.warn(rep, w)
	}
	r.state = types.RunDirectoriesResolved

	r.state = types.RunProcessing
	for _, pair := range resolved {
		r.processPair(rep, pair, cfg.Settings.Pattern(), transformer)
	}

	r.state = types.RunDone
	return rep, nil
}

func (r *Runner) processPair(rep *report.RunReport, pair types.DirectoryPair, pattern string, t Transformer) {
	log := r.opts.Logger.With().Str("pair", pair.Name).Logger()

	files, err := discover.Enumerate(pair.Source, pattern)
	if err != nil {
		r.warn(rep, fmt.Sprintf("enumerating %s: %v", pair.Source, err))
		return
	}

	rep.Stats.DirectoriesProcessed++
	pr := rep.StartPair(pair)

	fmt.Fprintf(r.opts.Out, "\n%s: %s -> %s (%d files)\n", pair.Name, pair.Source, pair.Target, len(files))
	if len(files) == 0 {
		log.Warn().Str("pattern", pattern).Msg("no matching files in source directory")
		return
	}

	var bar *progressbar.ProgressBar
	if r.opts.Progress {
		bar = progressbar.Default(int64(len(files)), pair.Name)
	}

	for _, task := range discover.Tasks(pair, files) {
		outputs, err := t.Transform(task)
		rep.AddFile(pr, task.SourcePath, outputs, err)

		if err != nil {
			log.Error().Err(err).Str("file", task.SourcePath).Msg("transform failed")
		} else if !r.opts.Progress {
			fmt.Fprintf(r.opts.Out, "  %s -> %s\n", filepath.Base(task.SourcePath), outputNames(outputs))
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
}

// fail moves the runner to the failed state. Only pre-processing states may
// fail; once files are being transformed, problems degrade to report entries.
func (r *Runner) fail(err error) (*report.RunReport, error) {
	if r.state.CanFail() {
		r.state = types.RunFailed
	}
	return nil, err
}

func (r *Runner) warn(rep *report.RunReport, msg string) {
	r.opts.Logger.Warn().Msg(msg)
	rep.AddWarning(msg)
}

// outputNames renders the written files for a status line: base names,
// or a placeholder when the transformer produced nothing.
func outputNames(outputs []string) string {
	if len(outputs) == 0 {
		return "(no sections)"
	}
	names := make([]string, len(outputs))
	for i, o := range outputs {
		names[i] = filepath.Base(o)
	}
	return strings.Join(names, ", ")
}
