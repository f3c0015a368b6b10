// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the simplify-markdown CLI, which
// rewrites Markdown course files into the reduced dialect a block-based
// editor can ingest.
package main

import (
	"github.com/Sehktel/Split-Simplify/internal/cli"
	"github.com/Sehktel/Split-Simplify/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.Main(cli.Spec{
		Op:    types.OpSimplify,
		Use:   "simplify-markdown",
		Short: "Rewrite Markdown course files into a reduced editor-safe dialect",
		Long: `simplify-markdown reads an ss.ini configuration describing source/target
directory pairs, and rewrites each Markdown file in a source directory into
the matching target directory under the same name.

The rewrite flattens constructs the downstream editor cannot represent:
<details> blocks are unwrapped, nested lists are pulled up one level,
inline code and links are converted to emphasis, blockquotes and HTML tags
are stripped. Fenced code blocks pass through untouched.`,
		Version: version,
	})
}
