package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(filepath.Join("out", "song.acep"), OutputPath("out", "songs/song.eabc", ".acep"))
	assert.Equal(filepath.Join("out", "tune.mid"), OutputPath("out", "tune", ".mid"))
}

func TestGatherSourcePaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.eabc", "b.abc", "c.txt", "sub/d.EABC"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0777))
		require.NoError(t, os.WriteFile(path, []byte("C"), 0644))
	}

	assert := assert.New(t)
	paths, err := GatherSourcePaths(dir, 0)
	assert.NoError(err)
	assert.Len(paths, 3)

	limited, err := GatherSourcePaths(dir, 2)
	assert.NoError(err)
	assert.Len(limited, 2)
}

func TestGatherSourcePathsMissingDir(t *testing.T) {
	_, err := GatherSourcePaths(filepath.Join(t.TempDir(), "nope"), 0)
	assert.Error(t, err)
}
