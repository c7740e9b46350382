package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/eabc2acep/midi"
	"github.com/jsphweid/eabc2acep/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "song.eabc")
	require.NoError(t, os.WriteFile(src, []byte("T:Song\nw: la la\nC D"), 0644))

	opts := encodeOptions{method: "gzip", outDir: filepath.Join(dir, "out"), json: true, midi: true}
	enc, err := newEncoder(opts.method, false)
	require.NoError(t, err)
	require.NoError(t, encodeFile(src, enc, nil, opts))

	assert := assert.New(t)
	data, err := os.ReadFile(filepath.Join(opts.outDir, "song.acep"))
	require.NoError(t, err)
	var env model.Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal("gzip", env.CompressMethod)

	data, err = os.ReadFile(filepath.Join(opts.outDir, "song.json"))
	require.NoError(t, err)
	var doc model.Project
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal("la", doc.Tracks[0].Notes[1].Lyric)

	s, err := midi.ReadMidiFile(filepath.Join(opts.outDir, "song.mid"))
	require.NoError(t, err)
	notes := midi.ReadNotes(s)
	require.Len(t, notes, 2)
	assert.Equal(62, notes[1].Pitch)
}

func TestEncodeAllUnknownMethod(t *testing.T) {
	err := encodeAll([]string{"missing.eabc"}, encodeOptions{method: "lz4"})
	assert.Error(t, err)
}

func TestAnalyzeSources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.eabc"), []byte("\"la\"C D {foo:1} E"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.abc"), []byte("T:empty"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("C"), 0644))

	r, err := analyzeSources(dir, 0)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(2, r.numFiles)
	assert.Equal(1, r.numFailed)
	assert.Equal([]int{3}, r.numNotes)
	assert.Equal(1, r.numLyrics)
	assert.Contains(r.failures, filepath.Join(dir, "b.abc"))
}
