package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeyoung304/MAIS/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "agent.ts")
	require.NoError(t, os.WriteFile(path, []byte("console.log('hi');\n"), 0600))

	content, info, err := fsutil.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "console.log('hi');\n", string(content))
	assert.Equal(t, path, info.Path)
	assert.Equal(t, int64(len(content)), info.Size)
	assert.Equal(t, os.FileMode(0600), info.Mode.Perm())
}

func TestReadFile_NotFound(t *testing.T) {
	t.Parallel()

	_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.ts"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fsutil.ErrNotFound)
}

func TestReadFile_Directory(t *testing.T) {
	t.Parallel()

	_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, fsutil.ErrIsDirectory)
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "agent.ts")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0644))

	ctx := context.Background()
	_, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	modified, err := fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.False(t, modified)

	// Same size, different content, bumped mod time.
	require.NoError(t, os.WriteFile(path, []byte("ORIGINAL"), 0644))
	require.NoError(t, os.Chtimes(path, time.Now(), info.ModTime.Add(time.Second)))

	modified, err = fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)
}

func TestCheckModified_DeletedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "agent.ts")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	ctx := context.Background()
	_, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	modified, err := fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)
}

func TestCheckModified_NilInfo(t *testing.T) {
	t.Parallel()

	_, err := fsutil.CheckModified(context.Background(), nil)
	assert.ErrorIs(t, err, fsutil.ErrNilFileInfo)
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "agent.ts")
	require.NoError(t, os.WriteFile(path, []byte("before"), 0600))

	err := fsutil.WriteAtomic(context.Background(), path, []byte("after"), 0600)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "after", string(got))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), stat.Mode().Perm())

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteAtomic_DefaultMode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "new.ts")
	err := fsutil.WriteAtomic(context.Background(), path, []byte("content"), 0)
	require.NoError(t, err)

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fsutil.DefaultFileMode, stat.Mode().Perm())
}

func TestWriteAtomic_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fsutil.WriteAtomic(ctx, filepath.Join(t.TempDir(), "x.ts"), []byte("x"), 0644)
	assert.ErrorIs(t, err, context.Canceled)
}
