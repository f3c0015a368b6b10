// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package simplify rewrites split section files into the reduced Markdown
// dialect the downstream block editor can ingest without losing text.
// The editor drops or mangles several constructs (bold and inline code in
// list items, blockquotes, markdown links, details blocks, bare snake_case
// identifiers), so each pass here removes or re-encodes one of them.
package simplify

import (
	"path/filepath"
	"strings"

	"github.com/Sehktel/Split-Simplify/internal/textenc"
	"github.com/Sehktel/Split-Simplify/pkg/types"
)

// Simplifier rewrites one file per input file, preserving the base name.
type Simplifier struct {
	codec *textenc.Codec
}

// New returns a Simplifier that reads and writes files through codec.
func New(codec *textenc.Codec) *Simplifier {
	return &Simplifier{codec: codec}
}

// Kind identifies the operation for pipeline selection and reporting.
func (s *Simplifier) Kind() types.Operation {
	return types.OpSimplify
}

// Transform reads the task's source file, applies the full rewrite, and
// writes the result under the target directory with the same base name.
func (s *Simplifier) Transform(task types.FileTask) ([]string, error) {
	content, err := s.codec.ReadFile(task.SourcePath)
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(task.TargetDir, filepath.Base(task.SourcePath))
	if err := s.codec.WriteFile(outPath, Rewrite(content)); err != nil {
		return nil, err
	}
	return []string{outPath}, nil
}

// Rewrite applies the document-level passes and then the line-level passes
// to content. Lines inside ``` fences pass through untouched. The pass
// order is load-bearing: link conversion must run before technical-term
// wrapping (so URLs are not wrapped), and italic stripping in numbered
// lists must run last (term wrapping may have introduced italics).
func Rewrite(content string) string {
	lines := splitLines(content)

	lines = unwrapDetails(lines)
	lines = unifyNestedLists(lines)

	out := make([]string, 0, len(lines))
	inFence := false

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			out = append(out, line)
			continue
		}
		if inFence {
			out = append(out, line)
			continue
		}

		if isShowAnswerHeader(line) {
			continue
		}

		line = normalizeHeaders(line)
		line = removeChecklists(line)
		line = fixBoldColonInLists(line)
		line = fixCodeSeparatorInLists(line)
		line = removeBoldInLists(line)
		line = removeCodeInLists(line)
		line = fixEmojiAtListStart(line)
		line = removeHTMLTags(line)
		line = removeBlockquotes(line)
		line = removeBareURLProtocols(line)
		line = convertMarkdownLinks(line)
		line = quoteOperators(line)
		line = removeInlineCode(line)
		line = wrapTechnicalTermsExceptImages(line)
		line = removeItalicInNumberedLists(line)

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

// splitLines splits content into lines without terminators. A trailing
// newline does not produce a final empty line.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
