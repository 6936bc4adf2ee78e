package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-catalog/internal/server"
)

func runList(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"list"}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func TestList_Table(t *testing.T) {
	out, err := runList(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(server.Entries())+1)
	assert.Contains(t, out, "attachment.content.length.mismatch")
	assert.Contains(t, out, "expectation_failed")
}

func TestList_JSON(t *testing.T) {
	out, err := runList(t, "--format", "json")
	require.NoError(t, err)

	var entries []server.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, server.Entries(), entries)
}

func TestList_YAML(t *testing.T) {
	out, err := runList(t, "-f", "yaml")
	require.NoError(t, err)

	var entries []server.Entry
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	assert.Equal(t, server.Entries(), entries)
}

func TestList_UnknownFormat(t *testing.T) {
	_, err := runList(t, "--format", "xml")
	assert.Error(t, err)
}
