// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package simplify

import (
	"regexp"
	"strings"
)

// commonWords lists ordinary English words that must not be mistaken for
// technical identifiers when wrapping latin terms in italics.
var commonWords = map[string]bool{
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true, "being": true,
	"and": true, "or": true, "not": true, "but": true, "if": true, "the": true, "a": true, "an": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true, "with": true, "by": true,
	"as": true, "it": true, "this": true, "that": true, "from": true, "all": true, "can": true,
	"will": true, "would": true, "should": true, "could": true, "may": true, "might": true,
	"do": true, "does": true, "did": true, "have": true, "has": true, "had": true,
	"get": true, "set": true, "use": true, "make": true, "take": true, "go": true, "see": true,
	"new": true, "old": true, "first": true, "last": true, "next": true, "one": true, "two": true,
	"when": true, "where": true, "why": true, "how": true, "what": true, "which": true,
	"some": true, "any": true, "many": true, "much": true, "few": true, "more": true, "most": true,
	"only": true, "just": true, "also": true, "even": true, "well": true, "way": true, "back": true,
	"time": true, "year": true, "work": true, "part": true, "case": true, "over": true, "than": true,
	"able": true, "data": true, "into": true, "then": true, "them": true, "each": true, "such": true,
}

var (
	snakeCaseRe = regexp.MustCompile(`\b[a-z][a-z0-9]*(?:_[a-z0-9]+)+\b`)
	latinWordRe = regexp.MustCompile(`\b[a-z]{4,}\b`)
	imageLinkRe = regexp.MustCompile(`(!\[[^\]]+\]\()([^)]+)(\))`)
)

// wrapTechnicalTermsExceptImages applies technical-term wrapping while
// keeping image paths intact. When the line carries an image link, only the
// link's alt-text prefix and closing fragment are processed, never the path.
func wrapTechnicalTermsExceptImages(line string) string {
	if !imageLinkRe.MatchString(line) {
		return wrapTechnicalTerms(line)
	}
	return imageLinkRe.ReplaceAllStringFunc(line, func(match string) string {
		m := imageLinkRe.FindStringSubmatch(match)
		return wrapTechnicalTerms(m[1]) + m[2] + wrapTechnicalTerms(m[3])
	})
}

// wrapTechnicalTerms wraps database-style identifiers in italics: the
// editor otherwise reinterprets bare snake_case terms as code blocks.
// Two shapes are wrapped: snake_case identifiers, and lowercase latin words
// of four or more letters that are not common English. Code fences, tables,
// headings, rules, and list items are skipped (list items already had all
// emphasis removed).
func wrapTechnicalTerms(line string) string {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "```") {
		return line
	}
	if strings.HasPrefix(trimmed, "|") || strings.Count(line, "|") > 2 {
		return line
	}
	if strings.HasPrefix(trimmed, "#") || trimmed == "---" {
		return line
	}
	if listItemRe.MatchString(line) {
		return line
	}

	line = wrapMatches(line, snakeCaseRe, "*", false)
	line = wrapMatches(line, latinWordRe, "-*", true)
	return line
}

// wrapMatches wraps every match of re in line with single stars, skipping
// matches already adjacent to a star (or any byte in exclude). With
// skipCommon set, common English words are left bare.
func wrapMatches(line string, re *regexp.Regexp, exclude string, skipCommon bool) string {
	idxs := re.FindAllStringIndex(line, -1)
	if idxs == nil {
		return line
	}

	var b strings.Builder
	prev := 0
	for _, idx := range idxs {
		start, end := idx[0], idx[1]
		word := line[start:end]

		skip := skipCommon && commonWords[word]
		if start > 0 && strings.IndexByte(exclude, line[start-1]) >= 0 {
			skip = true
		}
		if end < len(line) && line[end] == '*' {
			skip = true
		}

		b.WriteString(line[prev:start])
		if skip {
			b.WriteString(word)
		} else {
			b.WriteString("*")
			b.WriteString(word)
			b.WriteString("*")
		}
		prev = end
	}
	b.WriteString(line[prev:])
	return b.String()
}

var singleItalicRe = regexp.MustCompile(`\*[^*]+\*`)

// stripSingleItalics removes single-star emphasis markers, leaving bold
// (double-star) spans untouched.
func stripSingleItalics(line string) string {
	idxs := singleItalicRe.FindAllStringIndex(line, -1)
	if idxs == nil {
		return line
	}

	var b strings.Builder
	prev := 0
	for _, idx := range idxs {
		start, end := idx[0], idx[1]

		adjacent := (start > 0 && line[start-1] == '*') || (end < len(line) && line[end] == '*')
		b.WriteString(line[prev:start])
		if adjacent {
			b.WriteString(line[start:end])
		} else {
			b.WriteString(line[start+1 : end-1])
		}
		prev = end
	}
	b.WriteString(line[prev:])
	return b.String()
}
