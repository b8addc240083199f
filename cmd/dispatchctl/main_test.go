package main

import (
	"bytes"
	"context"
	"dispatch-simulation-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedPath = "../../data/seeds/dataset.json"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "does-not-exist.yaml")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	out, err := execute(t, "report", "--data", seedPath)
	require.NoError(t, err)

	assert.Contains(t, out, "TRUCK")
	assert.Contains(t, out, "Total distance: 123.1 miles")
	assert.Contains(t, out, "delivered by truck 3 at 12:11:40")
	assert.Contains(t, out, "410 S State St")
}

func TestStatusCommandSinglePackage(t *testing.T) {
	out, err := execute(t, "status", "--data", seedPath, "--at", "9:00", "--id", "6")
	require.NoError(t, err)

	assert.Contains(t, out, "Status at 09:00:00")
	assert.Contains(t, out, "delayed, assigned to truck 2")
}

func TestStatusCommandBeforeCorrection(t *testing.T) {
	out, err := execute(t, "status", "--data", seedPath, "--at", "10:00", "--id", "9")
	require.NoError(t, err)

	assert.Contains(t, out, "300 State St")
	assert.NotContains(t, out, "410 S State St")
}

func TestStatusCommandErrors(t *testing.T) {
	_, err := execute(t, "status", "--data", seedPath, "--at", "25:00")
	assert.ErrorIs(t, err, domain.ErrMalformedTime)

	_, err = execute(t, "status", "--data", seedPath, "--at", "10:00", "--id", "99")
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)

	_, err = execute(t, "status", "--data", seedPath)
	assert.Error(t, err, "--at is required")
}
