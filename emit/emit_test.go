package emit_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Torimune29/cppcodegen/emit"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.hpp")

	require.NoError(t, emit.WriteFile(path, "int x;\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "int x;\n", string(data))
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "doc.yaml")
	content := "path: out/geometry.hpp\nlines: [\"int x;\"]\n"
	require.NoError(t, os.WriteFile(manifestPath, []byte(content), 0o644))

	outPath, rendered, err := emit.Generate(manifestPath)
	require.NoError(t, err)

	// Output resolves relative to the manifest's directory.
	assert.Equal(t, filepath.Join(dir, "out", "geometry.hpp"), outPath)
	assert.Equal(t, "int x;\n", rendered)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, rendered, string(data))
}

func TestGenerate_NoOutputPath(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("lines: [\"int x;\"]\n"), 0o644))

	_, _, err := emit.Generate(manifestPath)
	assert.ErrorIs(t, err, emit.ErrNoOutputPath)
}

func TestGenerate_MissingManifest(t *testing.T) {
	_, _, err := emit.Generate(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("path: out.hpp\nlines: [\"int x;\"]\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan error, 16)
	done := make(chan error, 1)
	go func() {
		done <- emit.Watch(ctx, manifestPath, func(_ string, err error) {
			events <- err
		})
	}()

	// Watch generates once up front.
	select {
	case err := <-events:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial generation")
	}

	data, err := os.ReadFile(filepath.Join(dir, "out.hpp"))
	require.NoError(t, err)
	assert.Equal(t, "int x;\n", string(data))

	// Give the watcher time to register before rewriting the manifest.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(manifestPath, []byte("path: out.hpp\nlines: [\"int y;\"]\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case err := <-events:
			require.NoError(t, err)
		case <-deadline:
			t.Fatal("no regeneration after manifest change")
		}
		data, err := os.ReadFile(filepath.Join(dir, "out.hpp"))
		require.NoError(t, err)
		if string(data) == "int y;\n" {
			cancel()
			assert.ErrorIs(t, <-done, context.Canceled)
			return
		}
	}
}
