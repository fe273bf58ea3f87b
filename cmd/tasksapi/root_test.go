package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setTestEnv points the command at a fresh database and returns the path of
// an empty env file.
func setTestEnv(t *testing.T, interval string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DATABASE_URL", filepath.Join(dir, "tasks.db"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("REPORT_INTERVAL", interval)
	t.Setenv("REPORT_DAILY_AT", "")

	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, nil, 0o600))
	return envFile
}

func TestReportCommand_EmptyStore(t *testing.T) {
	envFile := setTestEnv(t, "0")

	var stdout, stderr bytes.Buffer
	code := execute([]string{"report", "--env-file", envFile}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Category summary")
	assert.Contains(t, stdout.String(), "- no categories")
	assert.Empty(t, stderr.String())
}

func TestRunCommand_NoScheduleReturns(t *testing.T) {
	envFile := setTestEnv(t, "0")

	var stdout, stderr bytes.Buffer
	code := execute([]string{"run", "--env-file", envFile}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
}

func TestRunCommand_InvalidDailyTime(t *testing.T) {
	envFile := setTestEnv(t, "0")
	t.Setenv("REPORT_DAILY_AT", "25:00")

	var stdout, stderr bytes.Buffer
	code := execute([]string{"run", "--env-file", envFile}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), `tasksapi: schedule daily report: invalid hour in "25:00"`)
}

func TestReportCommand_MissingEnvFile(t *testing.T) {
	setTestEnv(t, "0")
	missing := filepath.Join(t.TempDir(), "missing.env")

	var stdout, stderr bytes.Buffer
	code := execute([]string{"report", "--env-file", missing}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "tasksapi: config: load env file")
	assert.Empty(t, stdout.String())
}
