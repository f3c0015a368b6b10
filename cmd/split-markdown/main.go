// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the split-markdown CLI, which cuts
// large Markdown course files into one file per second-level section.
package main

import (
	"github.com/Sehktel/Split-Simplify/internal/cli"
	"github.com/Sehktel/Split-Simplify/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.Main(cli.Spec{
		Op:    types.OpSplit,
		Use:   "split-markdown",
		Short: "Split large Markdown course files into per-section files",
		Long: `split-markdown reads an ss.ini configuration describing source/target
directory pairs, scans each source directory for Markdown files, and writes
one output file per "## " section into the matching target directory.

Fenced code blocks are respected: a "## " line inside a code fence never
starts a new section. Relative image links are adjusted for the target
directory's nesting depth.`,
		Version: version,
	})
}
