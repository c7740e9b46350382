//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsphweid/eabc2acep/cmd"
	"github.com/jsphweid/eabc2acep/model"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const song = `X:1
T:Twinkle
C:Traditional
M:4/4
L:1/4
Q:1/4=100
K:G
{dyn:mf} G G d d | {ten:20} e e d2 |
w: Twin- kle twin- kle lit- tle star
{br:40} c c B B | A A G2 |
w: how I won- der what you are
`

func createEncodeReqBody(method string) io.Reader {
	data, err := json.Marshal(model.EncodeRequestBody{Source: song, CompressMethod: method})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func encode(t *testing.T, srv *httptest.Server, method string) (*http.Response, []byte) {
	resp, err := http.Post(srv.URL+"/encode", "application/json", createEncodeReqBody(method))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func decodeProject(t *testing.T, env model.Envelope) model.Project {
	raw, err := base64.StdEncoding.DecodeString(env.Content)
	require.NoError(t, err)

	var data []byte
	switch env.CompressMethod {
	case "gzip":
		r, err := gzip.NewReader(bytes.NewReader(raw))
		require.NoError(t, err)
		data, err = io.ReadAll(r)
		require.NoError(t, err)
	case "zstd":
		d, err := zstd.NewReader(nil)
		require.NoError(t, err)
		defer d.Close()
		data, err = d.DecodeAll(raw, nil)
		require.NoError(t, err)
	default:
		t.Fatalf("unexpected method %v", env.CompressMethod)
	}

	var doc model.Project
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestEncodeTwinkleE2E(t *testing.T) {
	srv := httptest.NewServer(cmd.NewServer("gzip", nil).Router())
	defer srv.Close()

	resp, body := encode(t, srv, "gzip")
	assert := assert.New(t)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var env model.Envelope
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(1000, env.Version)
	assert.Equal("Twinkle", env.Metadata["title"])

	doc := decodeProject(t, env)
	assert.Equal("1.0.0", doc.Version)
	assert.Equal(100, doc.Tempo)
	assert.Equal("G", doc.Key)

	notes := doc.Tracks[0].Notes
	require.Len(t, notes, 14)
	assert.Equal("Twin", notes[0].Lyric)
	assert.Equal(67, notes[0].Pitch)
	assert.Equal(74, notes[2].Pitch)
	assert.Equal(960, notes[6].Length)
	assert.Equal("star", notes[6].Lyric)
	assert.Equal("how", notes[7].Lyric)
	assert.Equal(0, notes[13].Pos-notes[12].Pos-notes[12].Length)
}

func TestEncodeZstdBecomesReadyE2E(t *testing.T) {
	srv := httptest.NewServer(cmd.NewServer("gzip", nil).Router())
	defer srv.Close()

	var body []byte
	require.Eventually(t, func() bool {
		var resp *http.Response
		resp, body = encode(t, srv, "zstd")
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	var env model.Envelope
	require.NoError(t, json.Unmarshal(body, &env))
	doc := decodeProject(t, env)
	assert.Len(t, doc.Tracks[0].Notes, 14)
}
