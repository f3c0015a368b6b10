// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover validates directory pairs and enumerates the input files
// beneath them. A missing source directory excludes its pair from the run
// with a warning; it never aborts the run.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Sehktel/Split-Simplify/pkg/types"
)

// Resolve checks each pair's source directory and creates its target
// directory with any missing ancestors. Pairs whose source is absent, or
// whose target cannot be created, are dropped with a warning. The returned
// slice preserves the input order.
func Resolve(pairs []types.DirectoryPair) (resolved []types.DirectoryPair, warnings []string) {
	for _, pair := range pairs {
		info, err := os.Stat(pair.Source)
		if err != nil || !info.IsDir() {
			warnings = append(warnings, fmt.Sprintf("source directory %s not found, skipping pair %q", pair.Source, pair.Name))
			continue
		}
		if err := os.MkdirAll(pair.Target, 0o755); err != nil {
			warnings = append(warnings, fmt.Sprintf("cannot create target directory %s for pair %q: %v", pair.Target, pair.Name, err))
			continue
		}
		resolved = append(resolved, pair)
	}
	return resolved, warnings
}

// Enumerate lists the files directly under dir whose names match the glob
// pattern, in lexicographic order. The walk is non-recursive: course files
// sit flat in their directory and the split output directory commonly nests
// under the source, which a recursive walk would re-process.
func Enumerate(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("bad file pattern %q: %w", pattern, err)
		}
		if ok {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// Tasks pairs every enumerated file with the pair's target directory.
func Tasks(pair types.DirectoryPair, files []string) []types.FileTask {
	tasks := make([]types.FileTask, len(files))
	for i, f := range files {
		tasks[i] = types.FileTask{
			SourcePath: f,
			SourceDir:  pair.Source,
			TargetDir:  pair.Target,
		}
	}
	return tasks
}
