package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	content := "facts:\n  - \"Upto(100)\"\nassignments:\n  a: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	def, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Upto(100)"}, def.Facts)
	require.Equal(t, 2, def.Assignments["a"])
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.json")
	content := `{"facts": ["Le(X,Y)", "Le(Y,Z)"], "events": {"start": "2024-01-15"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	def, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Le(X,Y)", "Le(Y,Z)"}, def.Facts)
	require.Equal(t, "2024-01-15", def.Events["start"])
}

func TestLoadUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.txt")
	require.NoError(t, os.WriteFile(path, []byte("whatever"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/scenario.yaml")
	require.Error(t, err)
}
