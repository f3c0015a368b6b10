// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package simplify

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	detailsOpenRe  = regexp.MustCompile(`(?i)<details>`)
	summaryOpenRe  = regexp.MustCompile(`(?i)<summary>`)
	summaryCloseRe = regexp.MustCompile(`(?i)</summary>`)
	detailsCloseRe = regexp.MustCompile(`(?i)</details>`)
)

// unwrapDetails removes <details>/<summary> markup, keeping the hidden
// content. Lines carrying the summary tags are dropped entirely: without a
// collapse control the "show answer" caption is noise.
func unwrapDetails(lines []string) []string {
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		switch {
		case detailsOpenRe.MatchString(line):
			if rest := detailsOpenRe.ReplaceAllString(line, ""); strings.TrimSpace(rest) != "" {
				result = append(result, rest)
			}
		case summaryOpenRe.MatchString(line), summaryCloseRe.MatchString(line):
			// dropped
		case detailsCloseRe.MatchString(line):
			// dropped
		default:
			result = append(result, line)
		}
	}
	return result
}

var (
	numberedItemRe = regexp.MustCompile(`^\d+\.\s+`)
	bulletItemRe   = regexp.MustCompile(`^-\s+`)
)

// unifyNestedLists rewrites nested list items to the marker type of their
// parent item. The editor cannot represent a bullet list nested inside a
// numbered one (or the reverse); children adopt the parent's type, numbered
// children restarting from 1 under each parent.
func unifyNestedLists(lines []string) []string {
	result := make([]string, 0, len(lines))

	parentType := "" // "numbered", "bullet", or "" for none
	parentIndent := 0
	counter := 1

	for _, line := range lines {
		stripped := strings.TrimLeft(line, " \t")
		indent := len(line) - len(stripped)

		isNumbered := numberedItemRe.MatchString(stripped)
		isBullet := bulletItemRe.MatchString(stripped)

		if !isNumbered && !isBullet {
			result = append(result, line)
			if indent <= parentIndent {
				parentType = ""
				parentIndent = 0
				counter = 1
			}
			continue
		}

		if indent == 0 || indent <= parentIndent {
			result = append(result, line)
			parentIndent = indent
			counter = 1
			if isNumbered {
				parentType = "numbered"
			} else {
				parentType = "bullet"
			}
			continue
		}

		// Nested item.
		if parentType == "" {
			result = append(result, line)
			continue
		}

		var text string
		if isNumbered {
			text = numberedItemRe.ReplaceAllString(stripped, "")
		} else {
			text = bulletItemRe.ReplaceAllString(stripped, "")
		}

		pad := strings.Repeat(" ", indent)
		if parentType == "numbered" {
			result = append(result, fmt.Sprintf("%s%d. %s", pad, counter, text))
			counter++
		} else {
			result = append(result, pad+"- "+text)
		}
	}
	return result
}

var showAnswerRe = regexp.MustCompile(`(?i)^[\s👁\x{FE0F}]*показать\s+(ответ|решение|результат)`)

// isShowAnswerHeader reports whether line is a leftover "показать ответ"
// (show answer) caption from an unwrapped summary block.
func isShowAnswerHeader(line string) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return false
	}
	clean := boldRe.ReplaceAllString(stripped, "$1")
	return showAnswerRe.MatchString(clean)
}
