package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestValidateAcceptsGoodLevel(t *testing.T) {
	out, err := runCommand(t, "validate", testPath("level.yaml"), "--products", testPath("products.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
}

func TestValidateRejectsBrokenLevel(t *testing.T) {
	out, err := runCommand(t, "validate", testPath("broken.yaml"), "--products", testPath("products.yaml"))
	require.Error(t, err)
	assert.Contains(t, out, "durian")
}

func TestValidateJSONOutput(t *testing.T) {
	out, err := runCommand(t, "validate", testPath("broken.yaml"),
		"--products", testPath("products.yaml"), "--format", "json")
	require.Error(t, err)

	var res validationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Valid)
	assert.Contains(t, res.Error, "durian")
}

func TestValidateRejectsUnknownFormat(t *testing.T) {
	_, err := runCommand(t, "validate", testPath("level.yaml"),
		"--products", testPath("products.yaml"), "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestInspectText(t *testing.T) {
	out, err := runCommand(t, "inspect", testPath("level.yaml"), "--products", testPath("products.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Storehouse")
	assert.Contains(t, out, `locking`)
	assert.Contains(t, out, `condition=place-product`)
	assert.Contains(t, out, `"crate"`)
	assert.Contains(t, out, "lock vault[0]")
}

func TestInspectJSON(t *testing.T) {
	out, err := runCommand(t, "inspect", testPath("level.yaml"),
		"--products", testPath("products.yaml"), "--format", "json")
	require.NoError(t, err)

	var sum levelSummary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, "Storehouse", sum.Name)
	assert.Equal(t, 40, sum.Cols)
	// bench, the vault behind its lock, and both collapse children
	assert.Equal(t, 4, sum.Shelves)
	require.Len(t, sum.Actors, 3)
	require.NotNil(t, sum.Actors[1].Inner)
	assert.Equal(t, "vault", sum.Actors[1].Inner.Reference)
}
