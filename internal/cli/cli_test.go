// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sehktel/Split-Simplify/internal/config"
	"github.com/Sehktel/Split-Simplify/pkg/types"
)

func testSpec(op types.Operation) Spec {
	return Spec{
		Op:      op,
		Use:     "split-markdown",
		Short:   "test binary",
		Version: "test",
	}
}

func execute(t *testing.T, spec Spec, args ...string) (string, string, error) {
	t.Helper()
	cmd := New(spec)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestMissingConfigPrintsSample(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.ini")
	_, errOut, err := execute(t, testSpec(types.OpSplit), "--config", missing)
	require.ErrorIs(t, err, config.ErrMissingConfigFile)
	assert.Contains(t, errOut, "[directories]")
}

func TestSplitEndToEnd(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "course")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "01_intro.md"),
		[]byte("## Лекция\n\nтекст\n\n## Практика\n\nещё\n"), 0o644))

	cfg := filepath.Join(root, "ss.ini")
	ini := fmt.Sprintf("[directories]\nc_source = %s\nc_target = %s\n",
		src, filepath.Join(root, "sections"))
	require.NoError(t, os.WriteFile(cfg, []byte(ini), 0o644))

	reportPath := filepath.Join(root, "run.yaml")
	out, _, err := execute(t, testSpec(types.OpSplit),
		"--config", cfg, "--report", reportPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Split complete")
	assert.FileExists(t, filepath.Join(root, "sections", "01_01.md"))
	assert.FileExists(t, filepath.Join(root, "sections", "01_02.md"))
	assert.FileExists(t, reportPath)
}

func TestVersionSubcommand(t *testing.T) {
	out, _, err := execute(t, testSpec(types.OpSplit), "version")
	require.NoError(t, err)
	assert.Equal(t, "split-markdown test\n", out)
}
