package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCLI(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "budget.db"))
	t.Setenv("JWT_SECRET", "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestExpenseAddThenList(t *testing.T) {
	setupCLI(t)

	out, err := run(t, "expense", "add", "-a", "300", "-c", "Food", "-d", "weekly shop", "--date", "2024-03-15")
	require.NoError(t, err)
	assert.Contains(t, out, "Added expense")

	_, err = run(t, "expense", "add", "-a", "300", "-c", "Transport", "--date", "2024-03-20")
	require.NoError(t, err)

	out, err = run(t, "expense", "list", "-p", "2024-03")
	require.NoError(t, err)
	assert.Contains(t, out, "weekly shop")
	assert.Contains(t, out, "Transport")

	out, err = run(t, "expense", "total", "-p", "2024-03")
	require.NoError(t, err)
	assert.Equal(t, "600.00", strings.TrimSpace(out))
}

func TestExpenseAdd_RejectsNonPositiveAmount(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "expense", "add", "-a", "0", "-c", "Food", "--date", "2024-03-15")
	assert.Error(t, err)

	_, err = run(t, "expense", "add", "-a", "abc")
	assert.Error(t, err)
}

func TestGoalProgress(t *testing.T) {
	setupCLI(t)

	out, err := run(t, "goal", "add", "-c", "Vacation", "-a", "3000", "--end-date", "2030-12-31")
	require.NoError(t, err)

	fields := strings.Fields(out)
	require.GreaterOrEqual(t, len(fields), 3)
	id := fields[2]

	out, err = run(t, "goal", "progress", id, "1500")
	require.NoError(t, err)
	assert.Contains(t, out, "1500.00 of 3000.00 (50%)")

	_, err = run(t, "goal", "progress", "missing", "10")
	assert.ErrorContains(t, err, "not found")
}

func TestSummary(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "income", "add", "-a", "2000", "-s", "Salary", "--date", "2024-03-01")
	require.NoError(t, err)
	_, err = run(t, "expense", "add", "-a", "800", "-c", "Housing", "--date", "2024-03-02")
	require.NoError(t, err)

	out, err := run(t, "summary", "-p", "2024-03")
	require.NoError(t, err)
	assert.Contains(t, out, "1200.00")
	assert.Contains(t, out, "60%")
	assert.Contains(t, out, "Housing")
}

func TestToken_RequiresSecret(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "token")
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "test-secret")
	out, err := run(t, "token", "--subject", "alice")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "."), 3)
}

func TestFailedCommandClosesStorage(t *testing.T) {
	setupCLI(t)

	a := &app{now: time.Now}
	root := newRootCommand(a)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"goal", "progress", "missing", "10"})

	err := root.Execute()
	require.ErrorContains(t, err, "not found")
	assert.Nil(t, a.storage)
	assert.Nil(t, a.facade)
}
