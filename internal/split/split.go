// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package split partitions large Markdown course files into per-section
// files. Sections begin at level-two headings; fenced code blocks are opaque
// to the scanner so a "## " inside a snippet never starts a section.
package split

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Sehktel/Split-Simplify/internal/textenc"
	"github.com/Sehktel/Split-Simplify/pkg/types"
)

// Splitter writes one output file per level-two section of each input file.
type Splitter struct {
	codec *textenc.Codec
}

// New returns a Splitter that reads and writes files through codec.
func New(codec *textenc.Codec) *Splitter {
	return &Splitter{codec: codec}
}

// Kind identifies the operation for pipeline selection and reporting.
func (s *Splitter) Kind() types.Operation {
	return types.OpSplit
}

// Transform reads the task's source file, splits it into sections, and
// writes {prefix}_{NN}{ext} files into the target directory. It returns the
// paths written. Inputs with no non-blank content produce no outputs and no
// error.
func (s *Splitter) Transform(task types.FileTask) ([]string, error) {
	content, err := s.codec.ReadFile(task.SourcePath)
	if err != nil {
		return nil, err
	}

	sections := ScanSections(content)
	if len(sections) == 0 {
		return nil, nil
	}

	base := filepath.Base(task.SourcePath)
	ext := filepath.Ext(base)
	prefix := FilePrefix(base)
	levels := levelsBelow(task.SourceDir, task.TargetDir)

	var outputs []string
	for i, section := range sections {
		name := fmt.Sprintf("%s_%02d%s", prefix, i+1, ext)
		outPath := filepath.Join(task.TargetDir, name)

		var b strings.Builder
		for _, line := range section {
			b.WriteString(AdjustRelativeLinks(line, levels))
		}
		if err := s.codec.WriteFile(outPath, b.String()); err != nil {
			return outputs, err
		}
		outputs = append(outputs, outPath)
	}
	return outputs, nil
}

// ScanSections splits content into sections at "## " headings, keeping line
// terminators. Content before the first heading forms the first section.
// Whitespace-only sections are dropped. Fences opened with ``` or ~~~
// toggle a state in which heading detection is suspended.
func ScanSections(content string) [][]string {
	lines := strings.SplitAfter(content, "\n")

	var sections [][]string
	var current []string
	inCodeBlock := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inCodeBlock = !inCodeBlock
			current = append(current, line)
			continue
		}
		if inCodeBlock {
			current = append(current, line)
			continue
		}

		if strings.HasPrefix(trimmed, "## ") && !strings.HasPrefix(trimmed, "### ") {
			if hasContent(current) {
				sections = append(sections, current)
			}
			current = []string{line}
			continue
		}
		current = append(current, line)
	}

	if hasContent(current) {
		sections = append(sections, current)
	}
	return sections
}

func hasContent(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return true
		}
	}
	return false
}

var numericPrefixRe = regexp.MustCompile(`^(\d+)`)

// FilePrefix derives the output name prefix from an input file name:
// the leading digit run of the stem ("04_sql_basics.md" -> "04"), or the
// first two characters when the name has no numeric prefix.
func FilePrefix(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	if m := numericPrefixRe.FindString(stem); m != "" {
		return m
	}
	runes := []rune(stem)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return string(runes)
}

// levelsBelow reports how many directory levels target sits beneath source,
// or 0 when target is not nested under source. Split output conventionally
// lands in a subdirectory of the course directory, which shifts relative
// links by this depth.
func levelsBelow(source, target string) int {
	src, err := filepath.Abs(source)
	if err != nil {
		return 0
	}
	tgt, err := filepath.Abs(target)
	if err != nil {
		return 0
	}
	rel, err := filepath.Rel(src, tgt)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
