// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package simplify

import (
	"regexp"
	"strings"
)

var (
	headerRe    = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	checklistRe = regexp.MustCompile(`^(\s*-)\s*\[[ xX]\]\s*`)
	listItemRe  = regexp.MustCompile(`^\s*(-|\d+\.)\s+`)

	boldRe       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")

	boldColonInsideRe  = regexp.MustCompile(`^(\s*(?:-|\d+\.)\s+)\*\*([^*]+):\*\*\s*(.+)$`)
	boldColonOutsideRe = regexp.MustCompile(`^(\s*(?:-|\d+\.)\s+)\*\*([^*]+)\*\*:\s*(.+)$`)

	codeEmDashRe = regexp.MustCompile("^(\\s*(?:-|\\d+\\.)\\s+)`([^`]+)`\\s*—\\s*(.+)$")
	codeColonRe  = regexp.MustCompile("^(\\s*(?:-|\\d+\\.)\\s+)`([^`]+)`\\s*:\\s*(.+)$")
	codeHyphenRe = regexp.MustCompile("^(\\s*(?:-|\\d+\\.)\\s+)`([^`]+)`\\s*-\\s*(.+)$")

	emojiListRe = regexp.MustCompile(`^(\s*(?:-|\d+\.)\s+)([\x{1F300}-\x{1F9FF}\x{1FA70}-\x{1FAFF}\x{2600}-\x{27BF}\x{1F1E0}-\x{1F1FF}]\x{FE0F}?)\s+(.+)$`)

	blockquoteRe     = regexp.MustCompile(`^(\s*>\s+)+`)
	blockquoteLineRe = regexp.MustCompile(`^\s*>\s+`)
	bareURLRe        = regexp.MustCompile(`https?://([^\s)]+)`)
	protocolRe       = regexp.MustCompile(`^https?://`)

	markdownLinkRe = regexp.MustCompile(`(!?)\[([^\]]+)\]\(([^)]+)\)`)
)

// normalizeHeaders forces every heading to level three; the editor renders
// a single heading size.
func normalizeHeaders(line string) string {
	if m := headerRe.FindStringSubmatch(line); m != nil {
		return "### " + m[2]
	}
	return line
}

// removeChecklists turns "- [ ]" / "- [x]" items into plain list items.
func removeChecklists(line string) string {
	return checklistRe.ReplaceAllString(line, "$1 ")
}

// fixBoldColonInLists rewrites "- **Term:** rest" and "- **Term**: rest"
// to "- Term: rest". The editor swallows everything after the colon when
// the term is bold.
func fixBoldColonInLists(line string) string {
	if boldColonInsideRe.MatchString(line) {
		return boldColonInsideRe.ReplaceAllString(line, "$1$2: $3")
	}
	if boldColonOutsideRe.MatchString(line) {
		return boldColonOutsideRe.ReplaceAllString(line, "$1$2: $3")
	}
	return line
}

// fixCodeSeparatorInLists strips backticks from "- `code` — explanation"
// items, keeping the separator (em-dash, colon, or hyphen).
func fixCodeSeparatorInLists(line string) string {
	if codeEmDashRe.MatchString(line) {
		return codeEmDashRe.ReplaceAllString(line, "$1$2 — $3")
	}
	if codeColonRe.MatchString(line) {
		return codeColonRe.ReplaceAllString(line, "$1$2: $3")
	}
	if codeHyphenRe.MatchString(line) {
		return codeHyphenRe.ReplaceAllString(line, "$1$2 - $3")
	}
	return line
}

// removeBoldInLists strips all bold markup inside list items.
func removeBoldInLists(line string) string {
	if listItemRe.MatchString(line) {
		return boldRe.ReplaceAllString(line, "$1")
	}
	return line
}

// removeCodeInLists strips all inline code markup inside list items.
func removeCodeInLists(line string) string {
	if listItemRe.MatchString(line) {
		return inlineCodeRe.ReplaceAllString(line, "$1")
	}
	return line
}

// fixEmojiAtListStart inserts a colon after an emoji that opens a list item;
// without a separator the editor drops the text that follows.
func fixEmojiAtListStart(line string) string {
	if m := emojiListRe.FindStringSubmatch(line); m != nil {
		return m[1] + m[2] + ": " + m[3]
	}
	return line
}

var (
	htmlBoldRe   = regexp.MustCompile(`(?i)<(?:b|strong)>([^<]+)</(?:b|strong)>`)
	htmlItalicRe = regexp.MustCompile(`(?i)<(?:i|em)>([^<]+)</(?:i|em)>`)
	htmlPairRe   = regexp.MustCompile(`(?i)<([a-z]+)>([^<]+)</([a-z]+)>`)
)

// removeHTMLTags converts simple HTML emphasis to Markdown and unwraps
// other simple paired tags.
func removeHTMLTags(line string) string {
	line = htmlBoldRe.ReplaceAllString(line, "**$1**")
	line = htmlItalicRe.ReplaceAllString(line, "*$1*")
	return htmlPairRe.ReplaceAllStringFunc(line, func(match string) string {
		m := htmlPairRe.FindStringSubmatch(match)
		if strings.EqualFold(m[1], m[3]) {
			return m[2]
		}
		return match
	})
}

// removeBlockquotes strips leading "> " markers; the editor has no
// blockquote element.
func removeBlockquotes(line string) string {
	return blockquoteRe.ReplaceAllString(line, "")
}

// removeBareURLProtocols drops http(s):// prefixes so the editor does not
// auto-link the URL.
func removeBareURLProtocols(line string) string {
	return bareURLRe.ReplaceAllString(line, "$1")
}

// convertMarkdownLinks rewrites "[text](url)" as "*text (url)*". Image
// links keep their Markdown form; they are the one link kind the editor
// understands.
func convertMarkdownLinks(line string) string {
	return markdownLinkRe.ReplaceAllStringFunc(line, func(match string) string {
		m := markdownLinkRe.FindStringSubmatch(match)
		bang, text, url := m[1], m[2], m[3]
		if bang == "!" || isImagePath(url) {
			return match
		}
		return "*" + text + " (" + protocolRe.ReplaceAllString(url, "") + ")*"
	})
}

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".bmp"}

func isImagePath(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// operatorRes quote comparison and JSON-path operators so the editor does
// not read them as markup. Longer operators come first so "->>" is not
// split into "->" plus ">".
var operatorRes = []*regexp.Regexp{
	regexp.MustCompile(`(\s|^)(->>)(\s*—\s*|\s+)`),
	regexp.MustCompile(`(\s|^)(->)(\s*—\s*|\s+)`),
	regexp.MustCompile(`(\s|^)(@>)(\s*—\s*|\s+)`),
	regexp.MustCompile(`(\s|^)(\?)(\s*—\s*|\s+)`),
	regexp.MustCompile(`(\s|^)(<=)(\s*—\s*|\s+)`),
	regexp.MustCompile(`(\s|^)(>=)(\s*—\s*|\s+)`),
	regexp.MustCompile(`(\s|^)(!=)(\s*—\s*|\s+)`),
}

// quoteOperators wraps standalone operators in double quotes. Blockquote
// remnants are left alone so "> " is never quoted.
func quoteOperators(line string) string {
	if blockquoteLineRe.MatchString(line) {
		return line
	}
	for _, re := range operatorRes {
		line = re.ReplaceAllString(line, `$1"$2"$3`)
	}
	return line
}

// removeInlineCode replaces any remaining inline code span with italics;
// outside lists the editor turns backticked terms into stray code blocks.
func removeInlineCode(line string) string {
	return inlineCodeRe.ReplaceAllString(line, "*$1*")
}

var numberedListRe = regexp.MustCompile(`^\s*\d+\.\s+`)

// removeItalicInNumberedLists strips single-star emphasis inside numbered
// list items, where the editor loses the emphasized text.
func removeItalicInNumberedLists(line string) string {
	if !numberedListRe.MatchString(line) {
		return line
	}
	return stripSingleItalics(line)
}
