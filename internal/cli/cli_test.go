package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fieldec "github.com/fieldec/fieldec"
	"github.com/fieldec/fieldec/internal/cli"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGet_StringAtPath(t *testing.T) {
	file := writeFile(t, "doc.json", `{"id": 321, "author": {"name": "John Doe"}}`)

	var buf bytes.Buffer
	cmd := &cli.GetCmd{Path: "author.name", Type: "string", Format: "json", File: file, Out: &buf}
	require.NoError(t, cmd.Run())
	assert.Equal(t, "\"John Doe\"\n", buf.String())
}

func TestGet_NumberAtPath(t *testing.T) {
	file := writeFile(t, "doc.json", `{"id": 321}`)

	var buf bytes.Buffer
	cmd := &cli.GetCmd{Path: "id", Type: "number", Format: "json", File: file, Out: &buf}
	require.NoError(t, cmd.Run())
	assert.Equal(t, "321\n", buf.String())
}

func TestGet_MissingPathReportsPointer(t *testing.T) {
	file := writeFile(t, "doc.json", `{"author": {"name": "John Doe"}}`)

	cmd := &cli.GetCmd{Path: "author.email", Type: "string", Format: "json", File: file}
	err := cmd.Run()
	require.Error(t, err)

	de, ok := fieldec.AsDecodeError(err)
	require.True(t, ok, "expected a DecodeError, got %v", err)
	assert.Equal(t, fieldec.CodeMissingField, de.Code)
	assert.Equal(t, "/author/email", de.Path.Pointer())
}

func TestGet_YAMLInput(t *testing.T) {
	file := writeFile(t, "doc.yaml", "author:\n  name: John Doe\n")

	var buf bytes.Buffer
	cmd := &cli.GetCmd{Path: "author.name", Type: "string", Format: "yaml", File: file, Out: &buf}
	require.NoError(t, cmd.Run())
	assert.Equal(t, "\"John Doe\"\n", buf.String())
}

func TestCheck_PresentAndMissingPaths(t *testing.T) {
	file := writeFile(t, "doc.json", `{"id": 1, "author": {"name": "John Doe"}}`)

	ok := &cli.CheckCmd{Paths: []string{"id", "author.name"}, Format: "json", File: file}
	require.NoError(t, ok.Run())

	bad := &cli.CheckCmd{Paths: []string{"author.email"}, Format: "json", File: file}
	err := bad.Run()
	require.Error(t, err)
	de, found := fieldec.AsDecodeError(err)
	require.True(t, found)
	assert.Equal(t, "/author/email", de.Path.Pointer())
}
