package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(200.0, Clamp(500.0, -200, 200))
	assert.Equal(-200.0, Clamp(-500.0, -200, 200))
	assert.Equal(1.2, Clamp(1.2, 0.5, 1.5))
	assert.Equal(3, Clamp(7, 0, 3))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
}

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(6), Sum([]int{1, 2, 3}))
}

func TestWriteOutputCreatesDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "song.acep")

	assert := assert.New(t)
	assert.NoError(WriteOutput(path, []byte("hi")))
	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("hi", string(data))
}
