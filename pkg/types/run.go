// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RunState tracks the phase a run is in. Per-file failures never move a run
// to RunFailed; only configuration-level errors do, and those can occur only
// before processing starts.
type RunState string

const (
	RunStart               RunState = "start"
	RunConfigLoaded        RunState = "config-loaded"
	RunDirectoriesResolved RunState = "directories-resolved"
	RunProcessing          RunState = "processing"
	RunDone                RunState = "done"
	RunFailed              RunState = "failed"
)

// CanFail reports whether a configuration-level error may still abort the
// run from this state.
func (s RunState) CanFail() bool {
	return s == RunStart || s == RunConfigLoaded
}

// FileTask is one input file scheduled for transformation, with the directory
// its output lands in. Tasks are built during enumeration and consumed once.
type FileTask struct {
	// SourcePath is the full path of the input file.
	SourcePath string

	// SourceDir is the directory the file was enumerated from.
	SourceDir string

	// TargetDir is the resolved output directory.
	TargetDir string
}

// RunStats accumulates counters over one run. The single execution goroutine
// is the only writer.
type RunStats struct {
	// DirectoriesProcessed counts directory pairs that were visited
	// (source existed and enumeration ran).
	DirectoriesProcessed int `yaml:"directories_processed"`

	// FilesRead counts input files handed to the transformer.
	FilesRead int `yaml:"files_read"`

	// FilesWritten counts output files produced. A split of one input
	// into five sections adds five.
	FilesWritten int `yaml:"files_written"`

	// Errors counts per-file processing failures.
	Errors int `yaml:"errors"`

	// Warnings counts skipped pairs and other non-fatal conditions.
	Warnings int `yaml:"warnings"`
}
