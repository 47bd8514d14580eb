package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInvalidFormatRejected(t *testing.T) {
	_, err := execute(t, "list", "--db", filepath.Join(t.TempDir(), "x.db"), "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestAddThenList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "list.db")

	out, err := execute(t, "add", "Dish Soap", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, `added "Dish Soap"`)

	out, err = execute(t, "list", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "[ ] Dish Soap  (manual)\n", out)
}

func TestAddConflictExitCode(t *testing.T) {
	db := filepath.Join(t.TempDir(), "list.db")

	_, err := execute(t, "add", "Dish Soap", "--db", db)
	require.NoError(t, err)

	_, err = execute(t, "add", "Dish Soap", "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestListEmpty(t *testing.T) {
	out, err := execute(t, "list", "--db", filepath.Join(t.TempDir(), "list.db"))
	require.NoError(t, err)
	assert.Equal(t, "(empty list)\n", out)
}

func TestSweepReportsCount(t *testing.T) {
	db := filepath.Join(t.TempDir(), "list.db")

	_, err := execute(t, "add", "Milk", "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "sweep", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "removed 0 duplicate entries")
}

func TestRemoveMissingEntry(t *testing.T) {
	_, err := execute(t, "remove", "no-such-id", "--db", filepath.Join(t.TempDir(), "list.db"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
