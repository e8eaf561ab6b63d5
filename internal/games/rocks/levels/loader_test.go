package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks/core"
	"github.com/vovakirdan/rocks-diamonds/internal/registry"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func rawLevel() []byte {
	data := make([]byte, core.W*core.H)
	data[core.W+1] = byte(core.PlayerMarker)
	data[core.W+2] = byte(core.Diamond)
	return data
}

func TestLoadFileRaw(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mine.bin", rawLevel())

	lvl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mine", lvl.ID)
	assert.Equal(t, path, lvl.FilePath)

	s, err := lvl.NewState()
	require.NoError(t, err)
	assert.Equal(t, core.C(1, 1), s.Player.Pos)
	assert.Equal(t, 1, s.DiamondsLeft())
}

func TestLoadFileRejectsMissingPlayer(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "noplayer.bin", make([]byte, core.W*core.H))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNoPlayer)
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", []byte("id: b-level\nlayout: [\"@*\"]\n"))
	writeFile(t, dir, "nested/a.lvl", rawLevel())
	writeFile(t, dir, "broken.yaml", []byte("id: broken\nlayout: [\"...\"]\n")) // no player
	writeFile(t, dir, "notes.txt", []byte("ignored"))

	loader := NewLoader(dir)
	lvls, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, lvls, 2)
	assert.Equal(t, "a", lvls[0].ID)
	assert.Equal(t, "b-level", lvls[1].ID)
	assert.Equal(t, "b-level", lvls[1].Name)
}

func TestLoaderMissingRoot(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "absent")).LoadAll()
	assert.Error(t, err)
}

func TestRegisterDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "zz-dir-level.bin", rawLevel())

	added, err := RegisterDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"zz-dir-level"}, added)
	assert.True(t, registry.Exists("zz-dir-level"))

	again, err := RegisterDir(dir)
	require.NoError(t, err)
	assert.Empty(t, again)

	lvl, err := registry.Load("zz-dir-level")
	require.NoError(t, err)
	assert.Equal(t, rawLevel(), lvl.Data)
}
