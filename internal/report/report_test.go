// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/Sehktel/Split-Simplify/pkg/types"
)

func sampleReport() *RunReport {
	r := New(types.OpSplit, "ss.ini", types.Settings{Encoding: "utf-8", FileExtension: ".md"})
	pair := r.StartPair(types.DirectoryPair{Name: "base", Source: "in", Target: "out", Op: types.OpSplit})
	r.AddFile(pair, "in/01_doc.md", []string{"out/01_01.md", "out/01_02.md"}, nil)
	r.AddFile(pair, "in/02_bad.md", nil, errors.New("boom"))
	r.AddWarning("source directory gone not found, skipping pair \"gone\"")
	r.Stats.DirectoriesProcessed = 1
	return r
}

func TestCounters(t *testing.T) {
	r := sampleReport()
	assert.Equal(t, 2, r.Stats.FilesRead)
	assert.Equal(t, 2, r.Stats.FilesWritten)
	assert.Equal(t, 1, r.Stats.Errors)
	assert.Equal(t, 1, r.Stats.Warnings)
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	sampleReport().PrintSummary(&buf)

	out := buf.String()
	assert.Contains(t, out, "Split complete")
	assert.Contains(t, out, "Directories processed: 1")
	assert.Contains(t, out, "Files written:         2")
	assert.Contains(t, out, "Errors:                1")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, sampleReport().WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded RunReport
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, types.OpSplit, loaded.Operation)
	require.Len(t, loaded.Pairs, 1)
	assert.Len(t, loaded.Pairs[0].Files, 2)
	assert.Equal(t, "boom", loaded.Pairs[0].Files[1].Error)
}
