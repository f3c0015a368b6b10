// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeaders(t *testing.T) {
	tests := []struct{ in, want string }{
		{"# Top", "### Top"},
		{"## Section", "### Section"},
		{"### Already", "### Already"},
		{"###### Deep", "### Deep"},
		{"plain text", "plain text"},
		{"#nospace", "#nospace"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeHeaders(tt.in), tt.in)
	}
}

func TestRemoveChecklists(t *testing.T) {
	assert.Equal(t, "- task one", removeChecklists("- [ ] task one"))
	assert.Equal(t, "- task two", removeChecklists("- [x] task two"))
	assert.Equal(t, "  - nested", removeChecklists("  - [X] nested"))
	assert.Equal(t, "- plain item", removeChecklists("- plain item"))
}

func TestFixBoldColonInLists(t *testing.T) {
	// Colon inside and outside the bold span.
	assert.Equal(t, "- FUNCTION: computes things", fixBoldColonInLists("- **FUNCTION:** computes things"))
	assert.Equal(t, "- FUNCTION: computes things", fixBoldColonInLists("- **FUNCTION**: computes things"))
	assert.Equal(t, "1. TRIGGER: fires on insert", fixBoldColonInLists("1. **TRIGGER:** fires on insert"))
	// Not a list: untouched.
	assert.Equal(t, "**Term:** rest", fixBoldColonInLists("**Term:** rest"))
}

func TestFixCodeSeparatorInLists(t *testing.T) {
	assert.Equal(t, "- RAISE NOTICE — info output", fixCodeSeparatorInLists("- `RAISE NOTICE` — info output"))
	assert.Equal(t, "- PRIMARY KEY: uniqueness", fixCodeSeparatorInLists("- `PRIMARY KEY` : uniqueness"))
	assert.Equal(t, "1. DROP TABLE - careful", fixCodeSeparatorInLists("1. `DROP TABLE` - careful"))
}

func TestRemoveBoldAndCodeInLists(t *testing.T) {
	assert.Equal(t, "- when the system optimal", removeBoldInLists("- when the system **optimal**"))
	assert.Equal(t, "1. kill it: SELECT pg_terminate_backend(pid);", removeCodeInLists("1. kill it: `SELECT pg_terminate_backend(pid);`"))
	// Outside lists both are preserved.
	assert.Equal(t, "keep **bold** here", removeBoldInLists("keep **bold** here"))
	assert.Equal(t, "keep `code` here", removeCodeInLists("keep `code` here"))
}

func TestFixEmojiAtListStart(t *testing.T) {
	assert.Equal(t, "- 🔥: 70% of projects", fixEmojiAtListStart("- 🔥 70% of projects"))
	assert.Equal(t, "1. 📊: typical stack", fixEmojiAtListStart("1. 📊 typical stack"))
	// Already separated: idempotent.
	assert.Equal(t, "- 🔥: text", fixEmojiAtListStart("- 🔥: text"))
	assert.Equal(t, "- plain item", fixEmojiAtListStart("- plain item"))
}

func TestRemoveHTMLTags(t *testing.T) {
	assert.Equal(t, "**loud**", removeHTMLTags("<b>loud</b>"))
	assert.Equal(t, "**loud**", removeHTMLTags("<strong>loud</strong>"))
	assert.Equal(t, "*soft*", removeHTMLTags("<i>soft</i>"))
	assert.Equal(t, "*soft*", removeHTMLTags("<em>soft</em>"))
	assert.Equal(t, "kept", removeHTMLTags("<kbd>kept</kbd>"))
	// Mismatched tags stay.
	assert.Equal(t, "<a>text</p>", removeHTMLTags("<a>text</p>"))
}

func TestRemoveBlockquotes(t *testing.T) {
	assert.Equal(t, "note text", removeBlockquotes("> note text"))
	assert.Equal(t, "nested quote", removeBlockquotes("> > nested quote"))
	// Operators survive: "->" is not a quote marker.
	assert.Equal(t, "a -> b", removeBlockquotes("a -> b"))
}

func TestRemoveBareURLProtocols(t *testing.T) {
	assert.Equal(t, "see www.postgresql.org/docs/", removeBareURLProtocols("see https://www.postgresql.org/docs/"))
	assert.Equal(t, "see example.com", removeBareURLProtocols("see http://example.com"))
}

func TestConvertMarkdownLinks(t *testing.T) {
	assert.Equal(t, "*PostgreSQL Docs (postgresql.org)*", convertMarkdownLinks("[PostgreSQL Docs](https://postgresql.org)"))
	// Image links are untouched, by bang and by extension.
	assert.Equal(t, "![INNER JOIN](./join.svg)", convertMarkdownLinks("![INNER JOIN](./join.svg)"))
	assert.Equal(t, "[diagram](./join.svg)", convertMarkdownLinks("[diagram](./join.svg)"))
}

func TestQuoteOperators(t *testing.T) {
	assert.Equal(t, `">=" — greater or equal`, quoteOperators(`>= — greater or equal`))
	assert.Equal(t, `"!=" — not equal`, quoteOperators(`!= — not equal`))
	assert.Equal(t, `"->>" — returns text`, quoteOperators(`->> — returns text`))
	assert.Equal(t, `"->" — returns json`, quoteOperators(`-> — returns json`))
	// Already quoted: stable.
	assert.Equal(t, `">=" — greater or equal`, quoteOperators(`">=" — greater or equal`))
}

func TestRemoveInlineCode(t *testing.T) {
	assert.Equal(t, "the *users* table", removeInlineCode("the `users` table"))
}

func TestRemoveItalicInNumberedLists(t *testing.T) {
	assert.Equal(t, "1. incident_id (note)", removeItalicInNumberedLists("1. *incident_id* (note)"))
	// Bold survives, bullet lists are untouched.
	assert.Equal(t, "1. keep **bold** text", removeItalicInNumberedLists("1. keep **bold** text"))
	assert.Equal(t, "- keep *italic* text", removeItalicInNumberedLists("- keep *italic* text"))
}

func TestWrapTechnicalTerms(t *testing.T) {
	tests := []struct{ name, in, want string }{
		{"snake case", "таблица student_id хранит ключ", "таблица *student_id* хранит ключ"},
		{"latin word", "таблица users хранит профили", "таблица *users* хранит профили"},
		{"common words skipped", "more data than most", "more data than most"},
		{"already wrapped stable", "таблица *users* хранит", "таблица *users* хранит"},
		{"short word skipped", "при min значении", "при min значении"},
		{"compound after hyphen skipped", "NULL-able столбец", "NULL-able столбец"},
		{"table row skipped", "| users | profiles |", "| users | profiles |"},
		{"heading skipped", "### users table", "### users table"},
		{"list item skipped", "- users table", "- users table"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapTechnicalTerms(tt.in))
		})
	}
}

func TestWrapTechnicalTermsExceptImages(t *testing.T) {
	in := "![схема таблиц](./schema_users.svg)"
	// The path inside an image link must never be wrapped.
	assert.Equal(t, in, wrapTechnicalTermsExceptImages(in))
}

func TestIsShowAnswerHeader(t *testing.T) {
	assert.True(t, isShowAnswerHeader("**👁️ Показать ответ**"))
	assert.True(t, isShowAnswerHeader("Показать решение"))
	assert.True(t, isShowAnswerHeader("показать результат"))
	assert.False(t, isShowAnswerHeader("Показать себя с лучшей стороны"))
	assert.False(t, isShowAnswerHeader(""))
	assert.False(t, isShowAnswerHeader("обычный текст"))
}
