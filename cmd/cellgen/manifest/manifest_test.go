package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cells.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

// should load a full manifest and default the registry name
func TestLoad(t *testing.T) {
	path := writeManifest(t, `
package: appstate
imports:
  - net/http
cells:
  - name: httpClient
    type: "*http.Client"
    init: newHTTPClient
    exported: true
    doc: Shared HTTP client.
  - name: retries
    type: int
    init: loadRetries
    fallible: true
`)

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "appstate", m.Package)
	assert.Equal(t, "cells", m.Registry, "registry name defaults")
	assert.Equal(t, []string{"net/http"}, m.Imports)
	require.Len(t, m.Cells, 2)
	assert.Equal(t, Cell{
		Name:     "httpClient",
		Type:     "*http.Client",
		Init:     "newHTTPClient",
		Exported: true,
		Doc:      "Shared HTTP client.",
	}, m.Cells[0])
	assert.True(t, m.Cells[1].Fallible)
	assert.False(t, m.Cells[1].Exported, "visibility defaults to module-local")
}

// should surface read and parse failures with context
func TestLoadFailures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "failed to read manifest")
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeManifest(t, "package: [")
		_, err := Load(path)
		assert.ErrorContains(t, err, "failed to parse manifest")
	})
}

// should reject manifests a generator cannot render
func TestValidate(t *testing.T) {
	valid := func() *Manifest {
		return &Manifest{
			Package: "appstate",
			Cells: []Cell{
				{Name: "config", Type: "string", Init: "loadConfig"},
			},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("bad package", func(t *testing.T) {
		m := valid()
		m.Package = "app state"
		assert.ErrorContains(t, m.Validate(), "invalid package name")
	})

	t.Run("bad registry", func(t *testing.T) {
		m := valid()
		m.Registry = "1cells"
		assert.ErrorContains(t, m.Validate(), "invalid registry name")
	})

	t.Run("no cells", func(t *testing.T) {
		m := valid()
		m.Cells = nil
		assert.ErrorContains(t, m.Validate(), "no cells declared")
	})

	t.Run("name not lowerCamel", func(t *testing.T) {
		m := valid()
		m.Cells[0].Name = "Config"
		assert.ErrorContains(t, m.Validate(), "lowerCamel")
	})

	t.Run("duplicate names", func(t *testing.T) {
		m := valid()
		m.Cells = append(m.Cells, m.Cells[0])
		assert.ErrorContains(t, m.Validate(), `"config" declared twice`)
	})

	t.Run("missing type", func(t *testing.T) {
		m := valid()
		m.Cells[0].Type = "  "
		assert.ErrorContains(t, m.Validate(), "has no type")
	})

	t.Run("bad init", func(t *testing.T) {
		m := valid()
		m.Cells[0].Init = "load config"
		assert.ErrorContains(t, m.Validate(), "invalid init func")
	})

	t.Run("qualified init is fine", func(t *testing.T) {
		m := valid()
		m.Cells[0].Init = "config.Load"
		assert.NoError(t, m.Validate())
	})
}
