package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "modxml.dev/pkg/modxml/internal/model"
)

func TestYAMLDefinitionStore_LoadDefinitions(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "b.yml"), `models:
  - model: PhysicsMaterials
    files: ["custom_physics.xml"]
`)
	writeTestFile(t, filepath.Join(dir, "a.yaml"), `models:
  - model: LanguageStrings
    files:
      - "std_*.xml"
      - "*_strings.xml"
`)
	writeTestFile(t, filepath.Join(dir, "notes.txt"), "ignored")
	writeTestFile(t, filepath.Join(dir, "empty.yaml"), "")

	store := NewYAMLDefinitionStore(NewLocalSourceFSAdapter())

	defs, err := store.LoadDefinitions(m.Path(dir))
	require.NoError(t, err)

	assert.Equal(t, []m.ModelDefinition{
		{Model: "LanguageStrings", Files: []string{"std_*.xml", "*_strings.xml"}, Source: m.Path(filepath.Join(dir, "a.yaml"))},
		{Model: "PhysicsMaterials", Files: []string{"custom_physics.xml"}, Source: m.Path(filepath.Join(dir, "b.yml"))},
	}, defs)
}

func TestYAMLDefinitionStore_Errors(t *testing.T) {
	store := NewYAMLDefinitionStore(NewLocalSourceFSAdapter())

	t.Run("missing directory", func(t *testing.T) {
		_, err := store.LoadDefinitions(m.Path(filepath.Join(t.TempDir(), "missing")))
		assert.Error(t, err)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "x.yaml")
		writeTestFile(t, path, "models: []")

		_, err := store.LoadDefinitions(m.Path(path))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "bad.yaml"), "models: [")

		_, err := store.LoadDefinitions(m.Path(dir))
		assert.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "bad.yaml"), "models:\n  - model: X\n    globs: [a]\n")

		_, err := store.LoadDefinitions(m.Path(dir))
		assert.Error(t, err)
	})

	t.Run("entry without patterns", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "bad.yaml"), "models:\n  - model: BannerIcons\n")

		_, err := store.LoadDefinitions(m.Path(dir))
		assert.ErrorIs(t, err, ErrInvalidDefinition)
	})
}
