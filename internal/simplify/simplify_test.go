// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package simplify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sehktel/Split-Simplify/internal/textenc"
	"github.com/Sehktel/Split-Simplify/pkg/types"
)

func TestUnwrapDetails(t *testing.T) {
	in := []string{
		"## Task",
		"<details>",
		"<summary>👁️ Показать ответ</summary>",
		"the hidden answer",
		"</details>",
		"after",
	}
	got := unwrapDetails(in)
	want := []string{"## Task", "the hidden answer", "after"}
	assert.Equal(t, want, got)
}

func TestUnifyNestedLists_NumberedParent(t *testing.T) {
	in := []string{
		"1. First",
		"   - Sub A",
		"   - Sub B",
		"2. Second",
		"   - Sub C",
	}
	got := unifyNestedLists(in)
	want := []string{
		"1. First",
		"   1. Sub A",
		"   2. Sub B",
		"2. Second",
		"   1. Sub C",
	}
	assert.Equal(t, want, got)
}

func TestUnifyNestedLists_BulletParent(t *testing.T) {
	in := []string{
		"- Parent",
		"  1. child one",
		"  2. child two",
	}
	got := unifyNestedLists(in)
	want := []string{
		"- Parent",
		"  - child one",
		"  - child two",
	}
	assert.Equal(t, want, got)
}

func TestUnifyNestedLists_PlainTextResetsContext(t *testing.T) {
	in := []string{
		"1. Numbered",
		"",
		"  - orphan bullet",
	}
	got := unifyNestedLists(in)
	// The blank line resets the parent; the indented bullet keeps its type.
	assert.Equal(t, in[0], got[0])
	assert.Equal(t, "  - orphan bullet", got[2])
}

func TestRewrite_CodeFencesUntouched(t *testing.T) {
	in := "## Heading\n\n```sql\nSELECT * FROM users; -- **not bold** `not code`\n## not a heading\n```\n\ntext with `users` term\n"
	out := Rewrite(in)

	assert.Contains(t, out, "SELECT * FROM users; -- **not bold** `not code`")
	assert.Contains(t, out, "## not a heading")
	assert.Contains(t, out, "### Heading")
	assert.Contains(t, out, "*users*")
}

func TestRewrite_FullDocument(t *testing.T) {
	in := strings.Join([]string{
		"# Урок 4",
		"",
		"> Цитата про таблицу",
		"",
		"- [ ] **Задача:** выполнить запрос",
		"- `SELECT` — выборка данных",
		"- 🔥 Важный пункт",
		"",
		"Смотри [PostgreSQL Docs](https://postgresql.org) и таблицу user_profiles.",
		"",
		"<details>",
		"<summary>Показать ответ</summary>",
		"ответ тут",
		"</details>",
	}, "\n")

	out := Rewrite(in)

	assert.Contains(t, out, "### Урок 4")
	assert.Contains(t, out, "Цитата про таблицу")
	assert.NotContains(t, out, "> Цитата")
	assert.Contains(t, out, "- Задача: выполнить запрос")
	assert.Contains(t, out, "- SELECT — выборка данных")
	assert.Contains(t, out, "- 🔥: Важный пункт")
	assert.Contains(t, out, "*PostgreSQL Docs (")
	assert.NotContains(t, out, "https://")
	assert.Contains(t, out, "*user_profiles*")
	assert.Contains(t, out, "ответ тут")
	assert.NotContains(t, out, "<details>")
	assert.NotContains(t, out, "Показать ответ")
}

func TestRewrite_Deterministic(t *testing.T) {
	in := "## A\n\n- **жирный** пункт со `кодом`\n\ntext with student_id term\n"
	assert.Equal(t, Rewrite(in), Rewrite(in))
}

func TestTransform_PreservesBaseName(t *testing.T) {
	codec, err := textenc.Lookup("utf-8")
	require.NoError(t, err)

	root := t.TempDir()
	src := filepath.Join(root, "detailed")
	tgt := filepath.Join(root, "simplified")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.MkdirAll(tgt, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(src, "04_02.md"), []byte("## Раздел\n\nтекст\n"), 0o644))

	s := New(codec)
	outputs, err := s.Transform(types.FileTask{
		SourcePath: filepath.Join(src, "04_02.md"),
		SourceDir:  src,
		TargetDir:  tgt,
	})
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, filepath.Join(tgt, "04_02.md"), outputs[0])

	data, err := os.ReadFile(outputs[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "### Раздел"))
}
