// Package cli implements the terminal interface of the expense ledger.
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runLedger executes the CLI against a temporary sqlite ledger. A fresh root
// command is built per invocation, the way main does it.
func runLedger(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// useTempLedger points the CLI at a sqlite file under a per-test directory.
func useTempLedger(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", path)
	return path
}

func TestAddCommand(t *testing.T) {
	t.Run("adds and prints the expense", func(t *testing.T) {
		useTempLedger(t)

		out, err := runLedger(t, "add", "2024-01-15", "12.345", "Food", "-j", "lunch")

		require.NoError(t, err)
		assert.Contains(t, out, "2024-01-15")
		assert.Contains(t, out, "12.35")
		assert.Contains(t, out, "food")
		assert.Contains(t, out, "lunch")
	})

	t.Run("rejects a malformed amount", func(t *testing.T) {
		useTempLedger(t)

		_, err := runLedger(t, "add", "2024-01-15", "abc", "food")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount")
	})

	t.Run("json output", func(t *testing.T) {
		useTempLedger(t)

		out, err := runLedger(t, "--format", "json", "add", "2024-01-15", "10.00", "food")

		require.NoError(t, err)
		assert.Contains(t, out, `"amount": "10.00"`)
		assert.Contains(t, out, `"category": "food"`)
	})
}

func TestShowAndRemoveCommands(t *testing.T) {
	useTempLedger(t)

	_, err := runLedger(t, "add", "2024-01-15", "10.00", "food")
	require.NoError(t, err)

	out, err := runLedger(t, "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "10.00")

	out, err = runLedger(t, "remove", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "expense removed")

	// The entry is gone; a second remove reports not found.
	_, err = runLedger(t, "show", "1")
	require.Error(t, err)
	_, err = runLedger(t, "remove", "1")
	require.Error(t, err)
}

func TestEditCommand(t *testing.T) {
	t.Run("changes only the flagged fields", func(t *testing.T) {
		useTempLedger(t)

		_, err := runLedger(t, "add", "2024-01-15", "10.00", "food", "-j", "lunch")
		require.NoError(t, err)

		out, err := runLedger(t, "edit", "1", "--amount", "25.50")
		require.NoError(t, err)
		assert.Contains(t, out, "25.50")
		assert.Contains(t, out, "food")
		assert.Contains(t, out, "lunch")
	})

	t.Run("requires at least one field flag", func(t *testing.T) {
		useTempLedger(t)

		_, err := runLedger(t, "add", "2024-01-15", "10.00", "food")
		require.NoError(t, err)

		_, err = runLedger(t, "edit", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nothing to edit")
	})
}

func TestReportCommand(t *testing.T) {
	useTempLedger(t)

	for _, entry := range [][]string{
		{"2024-01-01", "10.00", "food"},
		{"2024-01-01", "5.00", "food"},
		{"2024-01-02", "-3.00", "refund"},
	} {
		_, err := runLedger(t, "add", entry[0], entry[1], entry[2])
		require.NoError(t, err)
	}

	out, err := runLedger(t, "report", "2024-01-01", "2024-01-31")

	require.NoError(t, err)
	assert.Contains(t, out, "(3 entries)")
	assert.Contains(t, out, "food")
	assert.Contains(t, out, "15.00")
	assert.Contains(t, out, "-3.00")
	assert.Contains(t, out, "12.00")
}

func TestLoadAndSaveCommands(t *testing.T) {
	useTempLedger(t)
	dir := t.TempDir()

	input := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(input, []byte("2024-01-01,10.00,food,groceries\n2024-01-02,-3.00,refund,\n"), 0o600))

	out, err := runLedger(t, "load", input)
	require.NoError(t, err)
	assert.Contains(t, out, "loaded 2 expenses")

	saved := filepath.Join(dir, "out.csv")
	out, err = runLedger(t, "save", saved)
	require.NoError(t, err)
	assert.Contains(t, out, "saved 2 expenses")

	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01,10.00,food,groceries\n2024-01-02,-3.00,refund,\n", string(data))
}

func TestEraseCommand(t *testing.T) {
	useTempLedger(t)

	_, err := runLedger(t, "add", "2024-01-15", "10.00", "food")
	require.NoError(t, err)

	// Refuses without confirmation.
	_, err = runLedger(t, "erase")
	require.Error(t, err)

	out, err := runLedger(t, "erase", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "ledger erased")

	_, err = runLedger(t, "show", "1")
	require.Error(t, err)
}

func TestRootCommand_Format(t *testing.T) {
	useTempLedger(t)

	_, err := runLedger(t, "--format", "xml", "add", "2024-01-15", "10.00", "food")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
