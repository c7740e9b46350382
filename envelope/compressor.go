package envelope

import (
	"bytes"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

type Method string

const (
	Gzip Method = "gzip"
	Zstd Method = "zstd"
)

type State int

const (
	Uninitialized State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Compressor is a compression capability that may still be starting up.
// Callers check State or wait on Ready before compressing.
type Compressor interface {
	Method() Method
	State() State
	// Ready is closed once the state leaves Uninitialized.
	Ready() <-chan struct{}
	Compress(data []byte) ([]byte, error)
}

var ErrUnknownMethod = errors.New("unknown compress method")

func NewCompressor(method string) (Compressor, error) {
	switch Method(method) {
	case Gzip:
		return NewGzip(), nil
	case Zstd:
		return NewZstd(), nil
	}
	return nil, errors.Wrapf(ErrUnknownMethod, "%q", method)
}

type gzipCompressor struct {
	ready chan struct{}
}

func NewGzip() Compressor {
	ready := make(chan struct{})
	close(ready)
	return &gzipCompressor{ready: ready}
}

func (g *gzipCompressor) Method() Method         { return Gzip }
func (g *gzipCompressor) State() State           { return Ready }
func (g *gzipCompressor) Ready() <-chan struct{} { return g.ready }

func (g *gzipCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type ZstdCompressor struct {
	mu    sync.RWMutex
	state State
	enc   *zstd.Encoder
	err   error
	ready chan struct{}
}

// NewZstd starts building the zstd encoder in the background. The returned
// compressor reports Uninitialized until that finishes.
func NewZstd() *ZstdCompressor {
	z := newZstd()
	go z.init(func() (*zstd.Encoder, error) {
		return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	})
	return z
}

func newZstd() *ZstdCompressor {
	return &ZstdCompressor{ready: make(chan struct{})}
}

func (z *ZstdCompressor) init(build func() (*zstd.Encoder, error)) {
	enc, err := build()

	z.mu.Lock()
	defer z.mu.Unlock()
	if err != nil {
		z.state = Failed
		z.err = err
	} else {
		z.state = Ready
		z.enc = enc
	}
	close(z.ready)
}

func (z *ZstdCompressor) Method() Method         { return Zstd }
func (z *ZstdCompressor) Ready() <-chan struct{} { return z.ready }

func (z *ZstdCompressor) State() State {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.state
}

// Err is the initialization failure, if any.
func (z *ZstdCompressor) Err() error {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.err
}

func (z *ZstdCompressor) Compress(data []byte) ([]byte, error) {
	z.mu.RLock()
	enc, state := z.enc, z.state
	z.mu.RUnlock()
	if state != Ready {
		return nil, errors.Wrapf(ErrNotReady, "zstd is %v", state)
	}
	return enc.EncodeAll(data, nil), nil
}
