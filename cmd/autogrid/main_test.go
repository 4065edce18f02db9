package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeGrid(t *testing.T, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "grid.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestParseCmd(t *testing.T) {
	out, err := run(t, "parse", "100,*,2*,Auto")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{
		"0\tfixed\t100",
		"1\tstar\t*",
		"2\tstar\t2*",
		"3\tauto\tAuto",
	}, lines)
}

func TestParseCmd_Empty(t *testing.T) {
	_, err := run(t, "parse", "")
	require.EqualError(t, err, "empty size list")
}

func TestPlanCmd(t *testing.T) {
	path := writeGrid(t, `
grid {
  column_count = 3
  column_width = "*"
  row_height   = "1"
  width        = 30
  height       = 10

  child "a" {}
  child "b" { column_span = 2 }
  child "c" {}
}
`)

	out, err := run(t, "plan", path)
	require.NoError(t, err)

	require.Contains(t, out, "grid: horizontal, auto-indexing on, 30x10")
	require.Contains(t, out, "rows:    1,Auto -> [1 0]")
	require.Contains(t, out, "columns: *,*,* -> [10 10 10]")
	require.Regexp(t, `b\s+0\s+1\s+1\s+2\s+10,0 20x1`, out)
	require.Regexp(t, `c\s+1\s+0\s+1\s+1\s+0,1 10x0`, out)
}

func TestPlanCmd_SizeFlags(t *testing.T) {
	path := writeGrid(t, `
grid {
  child "only" {}
}
`)

	out, err := run(t, "plan", path, "--width", "7", "--height", "3")
	require.NoError(t, err)
	require.Contains(t, out, "7x3")
	require.Regexp(t, `only\s+0\s+0\s+1\s+1\s+0,0 7x0`, out)
}

func TestPlanCmd_DebugLog(t *testing.T) {
	path := writeGrid(t, `grid { column_count = 2 }`)
	logPath := filepath.Join(t.TempDir(), "debug.log")

	_, err := run(t, "plan", path, "--debug-log", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "re-index")
}

func TestPlanCmd_MissingFile(t *testing.T) {
	_, err := run(t, "plan", filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse HCL file")
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, "autogrid version dev\n", out)
}
