package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Torimune29/cppcodegen/manifest"
)

func TestParse(t *testing.T) {
	data := []byte(`
path: include/geometry.hpp
pragma_once: true
indent:
  width: 4
includes:
  system: [vector, string]
  local:
    base: "geometry/"
    files: [point.h]
namespaces:
  - name: geometry
    classes:
      - name: Point
        public:
          - "Point() = default;"
        private:
          - "double x_;"
`)

	doc, err := manifest.Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "include/geometry.hpp", doc.Path)
	assert.True(t, doc.PragmaOnce)
	assert.Equal(t, 4, doc.Indent.Width)
	assert.Equal(t, []string{"vector", "string"}, doc.Includes.System)
	require.NotNil(t, doc.Includes.Local)
	assert.Equal(t, "geometry/", doc.Includes.Local.Base)
	require.Len(t, doc.Namespaces, 1)
	require.Len(t, doc.Namespaces[0].Classes, 1)
	assert.Equal(t, "Point", doc.Namespaces[0].Classes[0].Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "empty input",
			data:    "",
			wantErr: manifest.ErrEmpty,
		},
		{
			name:    "malformed yaml",
			data:    "path: [unclosed",
			wantErr: manifest.ErrDecode,
		},
		{
			name:    "namespace without name",
			data:    "namespaces:\n  - lines: [\"int x;\"]\n",
			wantErr: manifest.ErrInvalid,
		},
		{
			name:    "class without name",
			data:    "classes:\n  - public: [\"void f();\"]\n",
			wantErr: manifest.ErrInvalid,
		},
		{
			name:    "unknown block kind",
			data:    "blocks:\n  - kind: wiggle\n",
			wantErr: manifest.ErrInvalid,
		},
		{
			name:    "definition block without declaration",
			data:    "blocks:\n  - kind: definition\n",
			wantErr: manifest.ErrInvalid,
		},
		{
			name:    "pragma_once and guard together",
			data:    "pragma_once: true\nguard: FOO_H\n",
			wantErr: manifest.ErrInvalid,
		},
		{
			name:    "multi-character indent fill",
			data:    "indent:\n  fill: \"ab\"\n",
			wantErr: manifest.ErrInvalid,
		},
		{
			name:    "local includes without files",
			data:    "includes:\n  local:\n    base: \"a/\"\n",
			wantErr: manifest.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "doc.yaml")
		require.NoError(t, os.WriteFile(path, []byte("path: out.hpp\nlines: [\"int x;\"]\n"), 0o644))

		doc, err := manifest.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "out.hpp", doc.Path)
		assert.Equal(t, []string{"int x;"}, doc.Lines)
	})

	t.Run("toml", func(t *testing.T) {
		path := filepath.Join(dir, "doc.toml")
		content := "path = \"out.hpp\"\nlines = [\"int x;\"]\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		doc, err := manifest.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "out.hpp", doc.Path)
		assert.Equal(t, []string{"int x;"}, doc.Lines)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "doc.ini")
		require.NoError(t, os.WriteFile(path, []byte("path=out.hpp"), 0o644))

		_, err := manifest.Load(path)
		assert.ErrorIs(t, err, manifest.ErrUnsupported)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := manifest.Load(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})
}
